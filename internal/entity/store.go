package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"backoffice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidPayload wraps client payloads that cannot be decoded into the
// target entity's row type.
var ErrInvalidPayload = errors.New("invalid payload")

// Store performs the data-store operations behind the generic router. It is
// deliberately thin: permission checks and field fixups happen one layer up.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List fetches the full collection for an entity. Asset lists eagerly load
// the nested maintenance log; every other entity returns a flat list.
func (s *Store) List(ctx context.Context, e Entity) (any, error) {
	switch e {
	case Employees:
		return listOf[model.Employee](ctx, s.db)
	case Tasks:
		return listOf[model.Task](ctx, s.db)
	case FinanceData:
		return listOf[model.Municipality](ctx, s.db)
	case Profiles:
		return listOf[model.Profile](ctx, s.db)
	case EmployeeExpenses:
		return listOf[model.EmployeeExpense](ctx, s.db)
	case InternalExpenses:
		return listOf[model.InternalExpense](ctx, s.db)
	case Assets:
		var assets []model.Asset
		if err := s.db.WithContext(ctx).Preload("MaintenanceLog").Find(&assets).Error; err != nil {
			return nil, err
		}
		return assets, nil
	case Suppliers:
		return listOf[model.Supplier](ctx, s.db)
	case Transactions:
		return listOf[model.Transaction](ctx, s.db)
	case Payrolls:
		return listOf[model.PayrollRecord](ctx, s.db)
	case LeaveRequests:
		return listOf[model.LeaveRequest](ctx, s.db)
	case ExternalSystems:
		return listOf[model.ExternalSystem](ctx, s.db)
	case UpdatePosts:
		return listOf[model.UpdatePost](ctx, s.db)
	case ManagedFiles:
		return listOf[model.ManagedFile](ctx, s.db)
	case PaymentNotes:
		return listOf[model.PaymentNote](ctx, s.db)
	case Notifications:
		return listOf[model.Notification](ctx, s.db)
	default:
		return nil, fmt.Errorf("unhandled entity: %s", e)
	}
}

// Add inserts one row built from the client payload. Any client-supplied id
// is discarded; the data store assigns it.
func (s *Store) Add(ctx context.Context, e Entity, payload map[string]any) error {
	delete(payload, "id")

	switch e {
	case Employees:
		return createAs[model.Employee](ctx, s.db, payload)
	case Tasks:
		return createAs[model.Task](ctx, s.db, payload)
	case FinanceData:
		return createAs[model.Municipality](ctx, s.db, payload)
	case Profiles:
		return s.createProfile(ctx, payload)
	case EmployeeExpenses:
		return createAs[model.EmployeeExpense](ctx, s.db, payload)
	case InternalExpenses:
		return createAs[model.InternalExpense](ctx, s.db, payload)
	case Assets:
		// The maintenance log has its own write path.
		delete(payload, "maintenanceLog")
		return createAs[model.Asset](ctx, s.db, payload)
	case Suppliers:
		return createAs[model.Supplier](ctx, s.db, payload)
	case Transactions:
		return createAs[model.Transaction](ctx, s.db, payload)
	case Payrolls:
		return createAs[model.PayrollRecord](ctx, s.db, payload)
	case LeaveRequests:
		return createAs[model.LeaveRequest](ctx, s.db, payload)
	case ExternalSystems:
		return createAs[model.ExternalSystem](ctx, s.db, payload)
	case UpdatePosts:
		return createAs[model.UpdatePost](ctx, s.db, payload)
	case ManagedFiles:
		return createAs[model.ManagedFile](ctx, s.db, payload)
	case PaymentNotes:
		return createAs[model.PaymentNote](ctx, s.db, payload)
	case Notifications:
		return createAs[model.Notification](ctx, s.db, payload)
	default:
		return fmt.Errorf("unhandled entity: %s", e)
	}
}

// createProfile rebuilds the row type by hand because the password hash is
// excluded from JSON serialization and would be dropped by the generic path.
func (s *Store) createProfile(ctx context.Context, payload map[string]any) error {
	hash, _ := payload["passwordHash"].(string)
	delete(payload, "passwordHash")

	var p model.Profile
	if err := decodeInto(payload, &p); err != nil {
		return err
	}
	p.PasswordHash = hash
	return s.db.WithContext(ctx).Create(&p).Error
}

// Update applies a partial update to the row with the given id. Keys arrive
// in the API's camelCase and are mapped to column names.
func (s *Store) Update(ctx context.Context, e Entity, id any, fields map[string]any) error {
	if e == Assets {
		// Clients send assets back whole; the log is a relation, not a column.
		delete(fields, "maintenanceLog")
	}

	res := s.db.WithContext(ctx).
		Model(s.modelFor(e)).
		Where("id = ?", id).
		Updates(toColumns(fields))
	return res.Error
}

// Delete removes the row with the given id. Dependent rows follow the
// declared foreign-key semantics (cascade or set-null).
func (s *Store) Delete(ctx context.Context, e Entity, id any) error {
	return s.db.WithContext(ctx).Delete(s.modelFor(e), "id = ?", id).Error
}

// AddMaintenanceRecord appends a maintenance record under the given asset.
func (s *Store) AddMaintenanceRecord(ctx context.Context, assetID any, record map[string]any) error {
	delete(record, "id")
	var rec model.MaintenanceRecord
	if err := decodeInto(record, &rec); err != nil {
		return err
	}
	if err := decodeInto(map[string]any{"assetId": assetID}, &rec); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// SetConfig upserts one app_config key.
func (s *Store) SetConfig(ctx context.Context, key string, value json.RawMessage) error {
	row := model.AppConfig{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&row).Error
}

// FetchAll fetches every collection concurrently. A failed collection is
// logged and degrades to an empty list rather than failing the whole fetch.
// App-config rows are merged in as top-level keys afterwards, and the legacy
// payrollRecords key is renamed for older clients.
func (s *Store) FetchAll(ctx context.Context) map[string]any {
	data := make(map[string]any, len(All())+2)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, e := range All() {
		wg.Add(1)
		go func(e Entity) {
			defer wg.Done()
			rows, err := s.List(ctx, e)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Failed to fetch entity %q: %v", e, err)
				data[string(e)] = []any{}
				return
			}
			data[string(e)] = rows
		}(e)
	}
	wg.Wait()

	var configRows []model.AppConfig
	if err := s.db.WithContext(ctx).Find(&configRows).Error; err != nil {
		log.Println("Failed to fetch app_config:", err)
	} else {
		for _, row := range configRows {
			var value any
			if len(row.Value) > 0 {
				if err := json.Unmarshal(row.Value, &value); err != nil {
					log.Printf("Skipping malformed app_config value for key %q: %v", row.Key, err)
					continue
				}
			}
			data[row.Key] = value
		}
	}

	if rows, ok := data["payrollRecords"]; ok {
		data["payrolls"] = rows
		delete(data, "payrollRecords")
	}

	return data
}

// modelFor returns a pointer to the zero row type backing an entity, for use
// as a GORM model target.
func (s *Store) modelFor(e Entity) any {
	switch e {
	case Employees:
		return &model.Employee{}
	case Tasks:
		return &model.Task{}
	case FinanceData:
		return &model.Municipality{}
	case Profiles:
		return &model.Profile{}
	case EmployeeExpenses:
		return &model.EmployeeExpense{}
	case InternalExpenses:
		return &model.InternalExpense{}
	case Assets:
		return &model.Asset{}
	case Suppliers:
		return &model.Supplier{}
	case Transactions:
		return &model.Transaction{}
	case Payrolls:
		return &model.PayrollRecord{}
	case LeaveRequests:
		return &model.LeaveRequest{}
	case ExternalSystems:
		return &model.ExternalSystem{}
	case UpdatePosts:
		return &model.UpdatePost{}
	case ManagedFiles:
		return &model.ManagedFile{}
	case PaymentNotes:
		return &model.PaymentNote{}
	case Notifications:
		return &model.Notification{}
	default:
		return nil
	}
}

func listOf[T any](ctx context.Context, db *gorm.DB) (any, error) {
	var rows []T
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func createAs[T any](ctx context.Context, db *gorm.DB, payload map[string]any) error {
	var row T
	if err := decodeInto(payload, &row); err != nil {
		return err
	}
	return db.WithContext(ctx).Create(&row).Error
}

// decodeInto round-trips a payload through JSON into the typed row, so the
// models' json tags define the accepted field names and types.
func decodeInto(payload map[string]any, target any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
