package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/paomind/internal/pao"
)

// Keys under which durable state is stored.
const (
	KeyTheme          = "pao-theme"
	KeyCustomItems    = "custom-pao-data"
	KeyOnboardingDone = "onboarding_completed"
	KeyWelcomeSeen    = "pao-seen-welcome"
	KeyUser           = "pao-user"
)

const flagSet = "true"

// Theme is the persisted color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User is the local identity recorded after sign-in. No credentials are
// stored.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Theme returns the saved theme. ok is false when none has been chosen or
// the stored value is not recognised.
func (s *Store) Theme(ctx context.Context) (Theme, bool, error) {
	v, ok, err := s.Get(ctx, KeyTheme)
	if err != nil || !ok {
		return "", false, err
	}
	switch t := Theme(v); t {
	case ThemeLight, ThemeDark:
		return t, true, nil
	}
	s.log.Warn("ignoring unknown theme", zap.String("value", v))
	return "", false, nil
}

// SetTheme saves the theme preference.
func (s *Store) SetTheme(ctx context.Context, t Theme) error {
	return s.Set(ctx, KeyTheme, string(t))
}

// LoadCustomItems reads the custom collection. A value that cannot be
// decoded is logged and treated as an empty collection.
func (s *Store) LoadCustomItems(ctx context.Context) ([]pao.CustomItem, error) {
	v, ok, err := s.Get(ctx, KeyCustomItems)
	if err != nil || !ok {
		return nil, err
	}
	var items []pao.CustomItem
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		s.log.Error("corrupt custom PAO data, starting empty",
			zap.String("key", KeyCustomItems), zap.Error(err))
		return nil, nil
	}
	return items, nil
}

// SaveCustomItems rewrites the whole custom collection.
func (s *Store) SaveCustomItems(ctx context.Context, items []pao.CustomItem) error {
	if items == nil {
		items = []pao.CustomItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode custom items: %w", err)
	}
	if err := s.Set(ctx, KeyCustomItems, string(data)); err != nil {
		s.log.Error("persist custom PAO data", zap.Int("items", len(items)), zap.Error(err))
		return err
	}
	return nil
}

// ClearCustomItems removes the custom collection entirely.
func (s *Store) ClearCustomItems(ctx context.Context) error {
	return s.Delete(ctx, KeyCustomItems)
}

// OnboardingDone reports whether onboarding has been completed.
func (s *Store) OnboardingDone(ctx context.Context) (bool, error) {
	return s.flag(ctx, KeyOnboardingDone)
}

// SetOnboardingDone records onboarding completion, or clears it so
// onboarding is shown again.
func (s *Store) SetOnboardingDone(ctx context.Context, done bool) error {
	return s.setFlag(ctx, KeyOnboardingDone, done)
}

// WelcomeSeen reports whether the one-time welcome message was shown.
func (s *Store) WelcomeSeen(ctx context.Context) (bool, error) {
	return s.flag(ctx, KeyWelcomeSeen)
}

// SetWelcomeSeen records that the welcome message was shown.
func (s *Store) SetWelcomeSeen(ctx context.Context, seen bool) error {
	return s.setFlag(ctx, KeyWelcomeSeen, seen)
}

// User returns the signed-in local user, if any.
func (s *Store) User(ctx context.Context) (*User, error) {
	v, ok, err := s.Get(ctx, KeyUser)
	if err != nil || !ok {
		return nil, err
	}
	var u User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		s.log.Warn("corrupt user record, signing out", zap.Error(err))
		return nil, nil
	}
	return &u, nil
}

// SetUser records the signed-in user.
func (s *Store) SetUser(ctx context.Context, u User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.Set(ctx, KeyUser, string(data))
}

// ClearUser signs the local user out.
func (s *Store) ClearUser(ctx context.Context) error {
	return s.Delete(ctx, KeyUser)
}

func (s *Store) flag(ctx context.Context, key string) (bool, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return ok && v == flagSet, nil
}

func (s *Store) setFlag(ctx context.Context, key string, on bool) error {
	if !on {
		return s.Delete(ctx, key)
	}
	return s.Set(ctx, key, flagSet)
}
