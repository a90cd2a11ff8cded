// Package seed holds the canonical bootstrap records the service starts
// with. The store lives for the lifetime of the process, so every restart
// begins from this data.
package seed

import (
	"time"

	"github.com/paododia/paododia-admin-service/internal/model"
)

func Products(now time.Time) []model.Product {
	return []model.Product{
		{
			BaseModel:   model.BaseModel{ID: "p1", CreatedAt: now, UpdatedAt: now},
			Name:        "Pão Francês",
			Price:       0.75,
			IsActive:    true,
			Description: "Clássico pão francês, crocante por fora e macio por dentro.",
			ImageURL:    "/assets/pao-frances.png",
		},
		{
			BaseModel:   model.BaseModel{ID: "p2", CreatedAt: now, UpdatedAt: now},
			Name:        "Croissant de Manteiga",
			Price:       5.50,
			IsActive:    true,
			Description: "Folhado e amanteigado, perfeito para o café da manhã.",
			ImageURL:    "/assets/croissant.png",
		},
		{
			BaseModel:   model.BaseModel{ID: "p3", CreatedAt: now, UpdatedAt: now},
			Name:        "Baguete",
			Price:       8.00,
			IsActive:    true,
			Description: "Longa e crocante, ideal para sanduíches.",
			ImageURL:    "/assets/baguete.png",
		},
		{
			BaseModel:   model.BaseModel{ID: "p4", CreatedAt: now, UpdatedAt: now},
			Name:        "Pão de Queijo",
			Price:       2.50,
			IsActive:    false,
			Description: "A delícia mineira que todos amam.",
			ImageURL:    "/assets/pao-de-queijo.png",
		},
	}
}

func Plans(now time.Time) []model.Plan {
	return []model.Plan{
		{
			BaseModel:      model.BaseModel{ID: "plan1", CreatedAt: now, UpdatedAt: now},
			Name:           "Plano Básico",
			Price:          49.90,
			IsCustomizable: false,
			IsActive:       true,
			Description:    "Receba pão francês todos os dias.",
		},
		{
			BaseModel:      model.BaseModel{ID: "plan2", CreatedAt: now, UpdatedAt: now},
			Name:           "Plano Família",
			Price:          89.90,
			IsCustomizable: true,
			IsActive:       true,
			Description:    "Monte seu kit semanal com uma variedade de produtos.",
		},
		{
			BaseModel:      model.BaseModel{ID: "plan3", CreatedAt: now, UpdatedAt: now},
			Name:           "Plano Premium",
			Price:          129.90,
			IsCustomizable: true,
			IsActive:       false,
			Description:    "Produtos artesanais e especiais toda semana.",
		},
	}
}

func Customers(now time.Time) []model.Customer {
	return []model.Customer{
		{
			BaseModel:      model.BaseModel{ID: "c1", CreatedAt: now, UpdatedAt: now},
			Name:           "Ana Silva",
			Condominium:    "Condomínio Sol Nascente",
			PlanID:         "plan1",
			PlanName:       "Plano Básico",
			DeliveryConfig: "Entrega 7h",
			IsActive:       true,
		},
		{
			BaseModel:      model.BaseModel{ID: "c2", CreatedAt: now, UpdatedAt: now},
			Name:           "Bruno Costa",
			Condominium:    "Condomínio Águas Claras",
			PlanID:         "plan2",
			PlanName:       "Plano Família",
			DeliveryConfig: "Retirada na portaria",
			IsActive:       true,
		},
		{
			BaseModel:      model.BaseModel{ID: "c3", CreatedAt: now, UpdatedAt: now},
			Name:           "Carlos Dias",
			Condominium:    "Condomínio Sol Nascente",
			PlanID:         "plan2",
			PlanName:       "Plano Família",
			DeliveryConfig: "Entrega 8h",
			IsActive:       true,
		},
		{
			BaseModel:      model.BaseModel{ID: "c4", CreatedAt: now, UpdatedAt: now},
			Name:           "Daniela Lima",
			Condominium:    "Condomínio Bosque Verde",
			PlanID:         "plan1",
			PlanName:       "Plano Básico",
			DeliveryConfig: "Entrega 7h30",
			IsActive:       false,
		},
	}
}

// Orders seeds three pending orders dated today and two delivered ones from
// the previous day, relative to the given clock.
func Orders(now time.Time) []model.Order {
	yesterday := now.Add(-24 * time.Hour)
	return []model.Order{
		{
			BaseModel:    model.BaseModel{ID: "o1", CreatedAt: now, UpdatedAt: now},
			CustomerName: "Ana Silva",
			Condominium:  "Condomínio Sol Nascente",
			Type:         model.TypeSubscription,
			Items: []model.OrderItem{
				{ProductID: "p1", ProductName: "Pão Francês", Quantity: 4},
			},
			Status:       model.StatusPending,
			DeliveryCode: "1234",
			OrderDate:    now,
			Version:      1,
		},
		{
			BaseModel:    model.BaseModel{ID: "o2", CreatedAt: now, UpdatedAt: now},
			CustomerName: "João Mendes (Avulso)",
			Condominium:  "Condomínio Sol Nascente",
			Type:         model.TypeOneOff,
			Items: []model.OrderItem{
				{ProductID: "p2", ProductName: "Croissant de Manteiga", Quantity: 2},
				{ProductID: "p3", ProductName: "Baguete", Quantity: 1},
			},
			Status:       model.StatusPending,
			DeliveryCode: "5678",
			OrderDate:    now,
			Version:      1,
		},
		{
			BaseModel:    model.BaseModel{ID: "o3", CreatedAt: now, UpdatedAt: now},
			CustomerName: "Bruno Costa",
			Condominium:  "Condomínio Águas Claras",
			Type:         model.TypeSubscription,
			Items: []model.OrderItem{
				{ProductID: "p1", ProductName: "Pão Francês", Quantity: 5},
				{ProductID: "p4", ProductName: "Pão de Queijo", Quantity: 10},
			},
			Status:       model.StatusPending,
			DeliveryCode: "9012",
			OrderDate:    now,
			Version:      1,
		},
		{
			BaseModel:    model.BaseModel{ID: "o4", CreatedAt: yesterday, UpdatedAt: yesterday},
			CustomerName: "Maria Oliveira (Avulso)",
			Condominium:  "Condomínio Bosque Verde",
			Type:         model.TypeOneOff,
			Items: []model.OrderItem{
				{ProductID: "p3", ProductName: "Baguete", Quantity: 2},
			},
			Status:       model.StatusDelivered,
			DeliveryCode: "3456",
			OrderDate:    yesterday,
			Version:      1,
		},
		{
			BaseModel:    model.BaseModel{ID: "o5", CreatedAt: yesterday, UpdatedAt: yesterday},
			CustomerName: "Carlos Dias",
			Condominium:  "Condomínio Sol Nascente",
			Type:         model.TypeSubscription,
			Items: []model.OrderItem{
				{ProductID: "p2", ProductName: "Croissant de Manteiga", Quantity: 4},
			},
			Status:       model.StatusDelivered,
			DeliveryCode: "7890",
			OrderDate:    yesterday,
			Version:      1,
		},
	}
}
