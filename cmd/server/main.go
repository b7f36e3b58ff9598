package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siparis-backend/internal/config"
	"siparis-backend/internal/database"
	"siparis-backend/internal/notify"
	"siparis-backend/internal/server"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	st, err := database.Open(openCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("[FATAL] depo açılamadı: %v", err)
	}

	notifiers := notify.Multi{notify.LogNotifier{}}
	var amqpNotifier *notify.AMQPNotifier
	if cfg.RabbitMQURL != "" {
		amqpNotifier, err = notify.DialAMQP(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		notifiers = append(notifiers, amqpNotifier)
		log.Printf("order.placed olayları %s exchange'ine yayınlanacak", notify.OrderExchange)
	}

	app := server.New(cfg, server.Deps{
		Store:    st,
		Links:    notify.NewLinkBuilder(cfg.WhatsAppBaseURL, cfg.CurrencySymbol),
		Notifier: notifiers,
	})

	go func() {
		<-ctx.Done()
		log.Println("Kapanış sinyali alındı, sunucu durduruluyor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("[WARN] sunucu düzgün kapanmadı: %v", err)
		}
	}()

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Printf("[ERROR] %v", err)
	}

	closeCtx, cancelClose := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelClose()
	if err := amqpNotifier.Close(closeCtx); err != nil {
		log.Printf("[WARN] rabbitmq kapatılamadı: %v", err)
	}
	if err := st.Close(closeCtx); err != nil {
		log.Printf("[WARN] depo kapatılamadı: %v", err)
	}
}
