package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []OrderPlaced
	err    error
}

func (r *recorder) OrderPlaced(ctx context.Context, evt OrderPlaced) error {
	r.events = append(r.events, evt)
	return r.err
}

func TestMultiDeliversToAll(t *testing.T) {
	failing := &recorder{err: errors.New("broker down")}
	ok := &recorder{}

	evt := OrderPlaced{OrderID: "abc", TableNumber: 4, WhatsappLink: "https://wa.me/1?text=x"}
	err := Multi{LogNotifier{}, failing, ok}.OrderPlaced(context.Background(), evt)

	assert.ErrorContains(t, err, "broker down")
	assert.Equal(t, []OrderPlaced{evt}, failing.events)
	assert.Equal(t, []OrderPlaced{evt}, ok.events)
}

func TestMultiEmpty(t *testing.T) {
	assert.NoError(t, Multi{}.OrderPlaced(context.Background(), OrderPlaced{}))
}
