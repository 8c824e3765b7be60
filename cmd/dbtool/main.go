// Command dbtool initializes the database schema, seeds the default admin
// user and can optionally insert a batch of simulated deliveries for local
// development.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/pflag"

	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
	"parcel-tracking-service/internal/repository"
	"parcel-tracking-service/internal/service/delivery"
	"parcel-tracking-service/internal/tracking"
)

func main() {
	// config.Load parses the flag set, so only registration happens here
	simulate := pflag.Bool("simulate", false, "insert simulated deliveries after initializing the schema")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := repository.NewPool(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer pool.Close()

	log.Println("initializing database schema...")
	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("schema ready")

	if err := seedAdmin(ctx, pool); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	if *simulate {
		if err := seedDeliveries(ctx, pool); err != nil {
			log.Fatalf("delivery simulation failed: %v", err)
		}
	}
}

// seedAdmin creates the default console user when it does not exist yet.
// The password comes from ADMIN_PASSWORD; the fallback is only meant for
// local development.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	users := repository.NewUserRepo(pool)

	existing, err := users.GetActiveByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Println("admin user already exists")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set, using development default")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := users.Create(ctx, &domain.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		return err
	}
	log.Printf("admin user created (id=%d)", id)
	return nil
}

type seedDelivery struct {
	input  domain.NewDeliveryInput
	status domain.DeliveryStatus
}

func seedDeliveries(ctx context.Context, pool *pgxpool.Pool) error {
	repo := repository.NewDeliveryRepo(pool)
	issuer := tracking.NewIssuer(repo)
	svc := delivery.NewService(repo, issuer, 3*time.Second, logx.Nop())

	for _, s := range sampleDeliveries() {
		d, err := svc.Create(ctx, s.input)
		if err != nil {
			return err
		}
		if s.status != domain.StatusPending {
			if _, err := svc.UpdateStatus(ctx, d.TrackingCode, s.status); err != nil {
				return err
			}
		}
		log.Printf("seeded delivery %s (%s)", d.TrackingCode, s.status)
	}
	return nil
}

func sampleDeliveries() []seedDelivery {
	f := func(v float64) *float64 { return &v }
	return []seedDelivery{
		{
			input: domain.NewDeliveryInput{
				SenderName:       "João Silva Santos",
				SenderAddress:    "Rua das Flores, 123, Centro",
				SenderCity:       "Recife - PE",
				RecipientName:    "Maria Oliveira Costa",
				RecipientAddress: "Av. Paulista, 1000, Bela Vista",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Eletrônicos",
				Weight:           f(2.5),
				DeclaredValue:    f(850.00),
			},
			status: domain.StatusDelivered,
		},
		{
			input: domain.NewDeliveryInput{
				SenderName:       "Pedro Almeida Lima",
				SenderAddress:    "Rua do Comércio, 456, Boa Viagem",
				SenderCity:       "Recife - PE",
				RecipientName:    "Ana Carolina Ferreira",
				RecipientAddress: "Rua Augusta, 2500, Consolação",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Roupas",
				Weight:           f(1.2),
				DeclaredValue:    f(320.00),
			},
			status: domain.StatusInTransit,
		},
		{
			input: domain.NewDeliveryInput{
				SenderName:       "Carlos Eduardo Rocha",
				SenderAddress:    "Av. Boa Viagem, 789, Boa Viagem",
				SenderCity:       "Recife - PE",
				RecipientName:    "Juliana Santos Moreira",
				RecipientAddress: "Rua Oscar Freire, 150, Jardins",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Documentos",
				Weight:           f(0.3),
				DeclaredValue:    f(50.00),
			},
			status: domain.StatusDelivered,
		},
		{
			input: domain.NewDeliveryInput{
				SenderName:       "Fernanda Costa Ribeiro",
				SenderAddress:    "Rua da Aurora, 321, Santo Amaro",
				SenderCity:       "Recife - PE",
				RecipientName:    "Roberto Silva Nunes",
				RecipientAddress: "Av. Faria Lima, 3000, Itaim Bibi",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Medicamentos",
				Weight:           f(0.8),
				DeclaredValue:    f(180.00),
			},
			status: domain.StatusDelivered,
		},
		{
			input: domain.NewDeliveryInput{
				SenderName:       "Antonio José Barbosa",
				SenderAddress:    "Rua do Sol, 654, Casa Amarela",
				SenderCity:       "Recife - PE",
				RecipientName:    "Camila Rodrigues Lima",
				RecipientAddress: "Rua Haddock Lobo, 800, Cerqueira César",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Livros",
				Weight:           f(3.2),
				DeclaredValue:    f(150.00),
			},
			status: domain.StatusPending,
		},
		{
			input: domain.NewDeliveryInput{
				SenderName:       "Luciana Mendes Souza",
				SenderAddress:    "Av. Conde da Boa Vista, 987, Boa Vista",
				SenderCity:       "Recife - PE",
				RecipientName:    "Diego Alves Pereira",
				RecipientAddress: "Rua Teodoro Sampaio, 1200, Pinheiros",
				RecipientCity:    "São Paulo - SP",
				ProductType:      "Eletrônicos",
				Weight:           f(4.1),
				DeclaredValue:    f(1200.00),
			},
			status: domain.StatusInTransit,
		},
	}
}
