package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"backoffice/internal/auth"
	"backoffice/internal/model"
	"backoffice/internal/permission"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrAlreadySeeded means the profiles table is populated and seeding was
// skipped entirely.
var ErrAlreadySeeded = errors.New("database has already been seeded")

// DefaultPassword is the initial password of every seeded account. Operators
// are expected to rotate these right after setup.
const DefaultPassword = "senhaPadrao123"

type defaultUser struct {
	Email      string
	Name       string
	Role       string
	Department string
}

var defaultUsers = []defaultUser{
	{Email: "admin@infoco.com.br", Name: "Administrador", Role: model.RoleAdmin, Department: "Diretoria"},
	{Email: "diretor@infoco.com.br", Name: "Diretor Geral", Role: model.RoleDirector, Department: "Diretoria"},
	{Email: "coordenador@infoco.com.br", Name: "Coordenador de Equipe", Role: model.RoleCoordinator, Department: "Operações"},
	{Email: "suporte@infoco.com.br", Name: "Suporte Técnico", Role: model.RoleSupport, Department: "Suporte"},
}

// Run populates an empty database with the default accounts, the default
// permission table and a small starter dataset. It refuses to touch a
// database that already has profiles.
func Run(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	log.Println("Seeding database...")

	var admin *model.Profile
	for _, u := range defaultUsers {
		hash, err := auth.HashPassword(DefaultPassword)
		if err != nil {
			return err
		}
		profile := model.Profile{
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			Department:   u.Department,
			PasswordHash: hash,
		}
		if err := db.WithContext(ctx).Create(&profile).Error; err != nil {
			return fmt.Errorf("seeding profiles: %w", err)
		}
		if profile.Role == model.RoleAdmin {
			admin = &profile
		}
	}
	if admin == nil {
		return errors.New("admin profile missing after insert")
	}

	welcome := model.UpdatePost{
		AuthorID: admin.ID,
		Content:  "Bem-vindo ao painel de gestão. Este é o feed de atualizações internas.",
	}
	if err := db.WithContext(ctx).Create(&welcome).Error; err != nil {
		return fmt.Errorf("seeding update posts: %w", err)
	}

	employees := []model.Employee{
		{Name: "Ana Souza", Position: "Analista Administrativo", Department: "Administrativo", Email: "ana.souza@infoco.com.br", BaseSalary: money("3500.00")},
		{Name: "Carlos Lima", Position: "Técnico de Suporte", Department: "Suporte", Email: "carlos.lima@infoco.com.br", BaseSalary: money("2800.00")},
	}
	if err := db.WithContext(ctx).Create(&employees).Error; err != nil {
		return fmt.Errorf("seeding employees: %w", err)
	}

	municipalities := []model.Municipality{
		{Municipality: "Município Modelo", Paid: dec("125000.00"), Pending: dec("15000.00"), ContractEndDate: "2027-12-31"},
	}
	if err := db.WithContext(ctx).Create(&municipalities).Error; err != nil {
		return fmt.Errorf("seeding municipalities: %w", err)
	}

	perms, err := json.Marshal(permission.Defaults())
	if err != nil {
		return err
	}
	configRows := []model.AppConfig{
		{Key: "permissions", Value: perms},
		{Key: "loginScreenImageUrl", Value: json.RawMessage("null")},
	}
	if err := db.WithContext(ctx).Create(&configRows).Error; err != nil {
		return fmt.Errorf("seeding app config: %w", err)
	}

	log.Println("Database seeded successfully.")
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func money(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
