package service

import (
	"context"
	"encoding/json"
	"testing"

	"backoffice/internal/auth"
	"backoffice/internal/database"
	"backoffice/internal/entity"
	"backoffice/internal/model"
	"backoffice/internal/permission"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedEvent struct {
	Entity string
	Action string
}

type fakeBroadcaster struct {
	events []recordedEvent
}

func (f *fakeBroadcaster) BroadcastChange(entity, action string) {
	f.events = append(f.events, recordedEvent{Entity: entity, Action: action})
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func newEntityService(t *testing.T) (*EntityService, *gorm.DB, *fakeBroadcaster) {
	t.Helper()
	db := openTestDB(t)
	events := &fakeBroadcaster{}
	svc := NewEntityService(entity.NewStore(db), permission.NewDefaultChecker(), events)
	return svc, db, events
}

func adminActor() auth.Actor {
	return auth.Actor{SessionID: "s", ProfileID: uuid.New(), Role: permission.RoleAdmin}
}

func TestAddReturnsRefreshedCollection(t *testing.T) {
	svc, _, events := newEntityService(t)
	ctx := context.Background()

	data, err := svc.Add(ctx, adminActor(), entity.Employees, map[string]any{
		"id":         123,
		"name":       "Ana Souza",
		"position":   "Analista",
		"department": "Administrativo",
		"email":      "ana.souza@infoco.com.br",
	})
	require.NoError(t, err)

	employees, ok := data.([]model.Employee)
	require.True(t, ok)
	require.Len(t, employees, 1)
	assert.Equal(t, 1, employees[0].ID) // client id discarded

	assert.Equal(t, []recordedEvent{{Entity: "employees", Action: "add"}}, events.events)
}

func TestAddDeniedLeavesDataUnchanged(t *testing.T) {
	svc, db, events := newEntityService(t)
	support := auth.Actor{ProfileID: uuid.New(), Role: permission.RoleSupport}

	_, err := svc.Add(context.Background(), support, entity.Employees, map[string]any{
		"name": "Intruso", "position": "x", "department": "x", "email": "intruso@x.com",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var count int64
	require.NoError(t, db.Model(&model.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Empty(t, events.events)
}

func TestAddProfileRequiresCredentials(t *testing.T) {
	svc, _, _ := newEntityService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, adminActor(), entity.Profiles, map[string]any{
		"email": "novo@infoco.com.br", "name": "Novo", "role": model.RoleSupport, "department": "Suporte",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(ctx, adminActor(), entity.Profiles, map[string]any{
		"password": "secreta", "name": "Novo", "role": model.RoleSupport, "department": "Suporte",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddProfileHashesPasswordAndLowercasesEmail(t *testing.T) {
	svc, db, _ := newEntityService(t)

	_, err := svc.Add(context.Background(), adminActor(), entity.Profiles, map[string]any{
		"email":      "Novo@Infoco.com.BR",
		"password":   "secretaForte1",
		"name":       "Novo Usuário",
		"role":       model.RoleSupport,
		"department": "Suporte",
	})
	require.NoError(t, err)

	var p model.Profile
	require.NoError(t, db.First(&p, "email = ?", "novo@infoco.com.br").Error)
	assert.NotEmpty(t, p.PasswordHash)
	assert.NotContains(t, p.PasswordHash, "secretaForte1")
	assert.True(t, auth.VerifyPassword("secretaForte1", p.PasswordHash))
}

func TestAddUpdatePostForcesAuthor(t *testing.T) {
	svc, db, _ := newEntityService(t)
	actor := adminActor()

	author := model.Profile{ID: actor.ProfileID, Email: "admin@infoco.com.br", Name: "Admin", Role: model.RoleAdmin, Department: "Diretoria", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	_, err := svc.Add(context.Background(), actor, entity.UpdatePosts, map[string]any{
		"authorId": uuid.NewString(), // spoofed, must be ignored
		"content":  "Comunicado geral",
	})
	require.NoError(t, err)

	var post model.UpdatePost
	require.NoError(t, db.First(&post).Error)
	assert.Equal(t, actor.ProfileID, post.AuthorID)
}

func TestUpdateRequiresID(t *testing.T) {
	svc, _, _ := newEntityService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, adminActor(), entity.Employees, map[string]any{"name": "Novo Nome"})
	assert.ErrorIs(t, err, ErrValidation)

	// Zero ids count as missing, as do empty strings; neither may silently
	// match no rows and report success.
	_, err = svc.Update(ctx, adminActor(), entity.Employees, map[string]any{"id": float64(0), "name": "Novo Nome"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, adminActor(), entity.Profiles, map[string]any{"id": "", "name": "Novo Nome"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfileStripsPasswordFields(t *testing.T) {
	svc, db, _ := newEntityService(t)
	ctx := context.Background()

	p := model.Profile{Email: "suporte@infoco.com.br", Name: "Suporte", Role: model.RoleSupport, Department: "Suporte", PasswordHash: "salt:original"}
	require.NoError(t, db.Create(&p).Error)

	_, err := svc.Update(ctx, adminActor(), entity.Profiles, map[string]any{
		"id":           p.ID.String(),
		"name":         "Suporte Técnico",
		"email":        "Suporte@Infoco.com.br",
		"password":     "nova-senha",
		"passwordHash": "salt:forged",
	})
	require.NoError(t, err)

	var got model.Profile
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	assert.Equal(t, "Suporte Técnico", got.Name)
	assert.Equal(t, "suporte@infoco.com.br", got.Email)
	assert.Equal(t, "salt:original", got.PasswordHash)
}

func TestDeleteRequiresID(t *testing.T) {
	svc, _, _ := newEntityService(t)

	_, err := svc.Delete(context.Background(), adminActor(), entity.Employees, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Delete(context.Background(), adminActor(), entity.Employees, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Delete(context.Background(), adminActor(), entity.Employees, float64(0))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteBroadcastsAndRefreshes(t *testing.T) {
	svc, db, events := newEntityService(t)
	ctx := context.Background()

	emp := model.Employee{Name: "Ana", Position: "Analista", Department: "Adm", Email: "ana@x.com"}
	require.NoError(t, db.Create(&emp).Error)

	data, err := svc.Delete(ctx, adminActor(), entity.Employees, emp.ID)
	require.NoError(t, err)

	employees, ok := data.([]model.Employee)
	require.True(t, ok)
	assert.Empty(t, employees)
	assert.Equal(t, []recordedEvent{{Entity: "employees", Action: "delete"}}, events.events)
}

func TestAddMaintenanceRecordGatedByAssets(t *testing.T) {
	svc, db, _ := newEntityService(t)
	ctx := context.Background()

	asset := model.Asset{Name: "Notebook", Description: "x", PurchaseDate: "2025-01-01", Location: "Sala 1", Status: model.AssetStatusInUse}
	require.NoError(t, db.Create(&asset).Error)

	support := auth.Actor{ProfileID: uuid.New(), Role: permission.RoleSupport}
	_, err := svc.AddMaintenanceRecord(ctx, support, asset.ID, map[string]any{"date": "2026-01-01", "description": "Limpeza", "cost": "50.00"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	data, err := svc.AddMaintenanceRecord(ctx, adminActor(), asset.ID, map[string]any{"date": "2026-01-01", "description": "Limpeza", "cost": "50.00"})
	require.NoError(t, err)

	assets, ok := data.([]model.Asset)
	require.True(t, ok)
	require.Len(t, assets, 1)
	assert.Len(t, assets[0].MaintenanceLog, 1)
}

func TestAllDataRequiresDashboardView(t *testing.T) {
	svc, _, _ := newEntityService(t)
	ctx := context.Background()

	// Every built-in role can view the dashboard; an unknown role cannot.
	data, err := svc.AllData(ctx, permission.RoleSupport)
	require.NoError(t, err)
	assert.Contains(t, data, "employees")

	_, err = svc.AllData(ctx, "intern")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSetConfig(t *testing.T) {
	svc, db, _ := newEntityService(t)
	ctx := context.Background()

	err := svc.SetConfig(ctx, permission.RoleCoordinator, "loginScreenImageUrl", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.SetConfig(ctx, permission.RoleAdmin, "", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.SetConfig(ctx, permission.RoleAdmin, "loginScreenImageUrl", nil)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.SetConfig(ctx, permission.RoleAdmin, "loginScreenImageUrl", json.RawMessage(`"https://cdn.example/login.png"`)))

	var row model.AppConfig
	require.NoError(t, db.First(&row, "key = ?", "loginScreenImageUrl").Error)
	assert.JSONEq(t, `"https://cdn.example/login.png"`, string(row.Value))
}
