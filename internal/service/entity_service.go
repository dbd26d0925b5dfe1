package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/entity"
	"backoffice/internal/permission"
)

// Broadcaster pushes entity-change events to connected dashboards. Writes
// must not fail because nobody is listening, so implementations are
// fire-and-forget.
type Broadcaster interface {
	BroadcastChange(entity, action string)
}

// EntityService implements the generic router's semantics: permission gate,
// write-path fixups, then the data-store operation, then a full refetch of
// the touched collection.
type EntityService struct {
	store   *entity.Store
	checker *permission.Checker
	events  Broadcaster
}

// NewEntityService wires the service. events may be nil in tests.
func NewEntityService(store *entity.Store, checker *permission.Checker, events Broadcaster) *EntityService {
	return &EntityService{store: store, checker: checker, events: events}
}

// Add inserts a row and returns the refreshed collection.
func (s *EntityService) Add(ctx context.Context, actor auth.Actor, e entity.Entity, payload map[string]any) (any, error) {
	if !s.checker.Check(actor.Role, string(e), permission.ActionAdd) {
		return nil, fmt.Errorf("%w: you cannot add this item", ErrPermissionDenied)
	}

	delete(payload, "id")

	switch e {
	case entity.Profiles:
		email, _ := payload["email"].(string)
		password, _ := payload["password"].(string)
		if email == "" || password == "" {
			return nil, fmt.Errorf("%w: email and password are required for new users", ErrValidation)
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		payload["email"] = strings.ToLower(email)
		payload["passwordHash"] = hash
		delete(payload, "password")
	case entity.UpdatePosts:
		// The author is always the caller, whatever the client sent.
		payload["authorId"] = actor.ProfileID.String()
	}

	if err := s.store.Add(ctx, e, payload); err != nil {
		return nil, err
	}

	s.broadcast(e, "add")
	return s.store.List(ctx, e)
}

// Update applies a partial update identified by payload["id"] and returns
// the refreshed collection.
func (s *EntityService) Update(ctx context.Context, actor auth.Actor, e entity.Entity, payload map[string]any) (any, error) {
	if !s.checker.Check(actor.Role, string(e), permission.ActionUpdate) {
		return nil, fmt.Errorf("%w: you cannot edit this item", ErrPermissionDenied)
	}

	id := payload["id"]
	if missingID(id) {
		return nil, fmt.Errorf("%w: id is required for update", ErrValidation)
	}
	delete(payload, "id")

	if e == entity.Profiles {
		// Password changes never go through the generic update.
		delete(payload, "password")
		delete(payload, "passwordHash")
		if email, ok := payload["email"].(string); ok && email != "" {
			payload["email"] = strings.ToLower(email)
		}
	}

	if err := s.store.Update(ctx, e, id, payload); err != nil {
		return nil, err
	}

	s.broadcast(e, "update")
	return s.store.List(ctx, e)
}

// Delete removes the row identified by id and returns the refreshed
// collection. Deletion is immediate; dependents follow their declared
// foreign-key semantics.
func (s *EntityService) Delete(ctx context.Context, actor auth.Actor, e entity.Entity, id any) (any, error) {
	if !s.checker.Check(actor.Role, string(e), permission.ActionDelete) {
		return nil, fmt.Errorf("%w: you cannot delete this item", ErrPermissionDenied)
	}
	if missingID(id) {
		return nil, fmt.Errorf("%w: id is required for delete", ErrValidation)
	}

	if err := s.store.Delete(ctx, e, id); err != nil {
		return nil, err
	}

	s.broadcast(e, "delete")
	return s.store.List(ctx, e)
}

// AddMaintenanceRecord appends a record to an asset's maintenance log and
// returns the refreshed asset collection. Gated by the assets capability
// like any other asset write.
func (s *EntityService) AddMaintenanceRecord(ctx context.Context, actor auth.Actor, assetID any, record map[string]any) (any, error) {
	if !s.checker.Check(actor.Role, string(entity.Assets), permission.ActionUpdate) {
		return nil, fmt.Errorf("%w: you cannot add maintenance records", ErrPermissionDenied)
	}
	if missingID(assetID) || record == nil {
		return nil, fmt.Errorf("%w: assetId and record are required", ErrValidation)
	}

	if err := s.store.AddMaintenanceRecord(ctx, assetID, record); err != nil {
		return nil, err
	}

	s.broadcast(entity.Assets, "update")
	return s.store.List(ctx, entity.Assets)
}

// AllData returns every collection plus the app-config keys, for the
// dashboard's initial load.
func (s *EntityService) AllData(ctx context.Context, role permission.Role) (map[string]any, error) {
	if !s.checker.Check(role, "dashboard", permission.ActionView) {
		return nil, fmt.Errorf("%w: access denied", ErrPermissionDenied)
	}
	return s.store.FetchAll(ctx), nil
}

// SetConfig upserts one app_config key, gated by the settings capability.
func (s *EntityService) SetConfig(ctx context.Context, role permission.Role, key string, value json.RawMessage) error {
	if !s.checker.Check(role, "settings", permission.ActionUpdate) {
		return fmt.Errorf("%w: access denied", ErrPermissionDenied)
	}
	if key == "" || value == nil {
		return fmt.Errorf("%w: key and value are required for config update", ErrValidation)
	}
	return s.store.SetConfig(ctx, key, value)
}

func (s *EntityService) broadcast(e entity.Entity, action string) {
	if s.events != nil {
		s.events.BroadcastChange(string(e), action)
	}
}

// missingID reports whether a client-supplied id is absent. JSON numbers
// arrive as float64; zero and the empty string count as missing, so a bad id
// fails loudly instead of matching no rows.
func missingID(id any) bool {
	switch v := id.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}
