package client

import (
	"context"
	"errors"
	"leadgen/pkg/domain"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	DefaultSaveDelay     = 2 * time.Second
	DefaultValidateDelay = 1500 * time.Millisecond
)

// ErrNotLoaded is returned when settings are edited before Load.
var ErrNotLoaded = errors.New("client: settings are not loaded")

// State of an Autosaver.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
	StateDirty
	StateValidating
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateDirty:
		return "dirty"
	case StateValidating:
		return "validating"
	case StateSaving:
		return "saving"
	}

	return "unknown"
}

// SettingsAPI is the part of the API an Autosaver needs.
type SettingsAPI interface {
	Settings(ctx context.Context) (domain.SearchSettings, error)
	UpdateSettings(ctx context.Context, s domain.SearchSettings) (domain.SearchSettings, error)
	ValidateLocations(ctx context.Context, raw string) (LocationValidation, error)
}

var _ SettingsAPI = (*Client)(nil)

type AutosaveOptions struct {
	// SaveDelay is the debounce between the last edit and the save.
	SaveDelay time.Duration
	// ValidateDelay is the debounce of location validation.
	ValidateDelay time.Duration
	// OnSave is called after every save attempt.
	OnSave func(domain.SearchSettings, error)
}

// Autosaver keeps an editable copy of the account's search settings and
// saves it after edits settle. Saves are skipped while location validation
// is pending or any field has invalid items.
type Autosaver struct {
	api  SettingsAPI
	opts AutosaveOptions

	ctx    context.Context
	cancel context.CancelFunc
	timers timers

	mu            sync.Mutex
	values        map[domain.SettingsField]string
	invalid       map[domain.SettingsField][]string
	loaded        bool
	dirty         bool
	saving        bool
	validating    bool
	saveWaiting   bool
	edits         uint64
	locationRev   uint64
	lastErr       error
	saveTimer     *time.Timer
	validateTimer *time.Timer
	closed        bool
}

func NewAutosaver(api SettingsAPI, opts AutosaveOptions) *Autosaver {
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultSaveDelay
	}
	if opts.ValidateDelay <= 0 {
		opts.ValidateDelay = DefaultValidateDelay
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Autosaver{
		api:     api,
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
		values:  make(map[domain.SettingsField]string),
		invalid: make(map[domain.SettingsField][]string),
	}
}

// Load fetches the stored settings and enables autosave.
func (a *Autosaver) Load(ctx context.Context) error {
	s, err := a.api.Settings(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	a.apply(s)
	a.loaded = true
	a.dirty = false

	return nil
}

func (a *Autosaver) apply(s domain.SearchSettings) {
	for _, f := range domain.SettingsFields() {
		a.values[f] = s.Get(f)
	}
}

func (a *Autosaver) snapshot() domain.SearchSettings {
	var s domain.SearchSettings
	for _, f := range domain.SettingsFields() {
		v := a.values[f]
		s.Set(f, &v)
	}

	return s
}

// Set edits one field and restarts the save debounce.
func (a *Autosaver) Set(field domain.SettingsField, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if !a.loaded {
		return ErrNotLoaded
	}

	a.values[field] = value
	a.dirty = true
	a.edits++

	switch field {
	case domain.FieldCategories, domain.FieldExcludedCategories:
		a.invalid[field] = domain.InvalidCategoryTokens(value)
	case domain.FieldLocations:
		a.locationRev++
		a.validating = true
		a.timers.arm(&a.validateTimer, a.opts.ValidateDelay, a.validate)
	}

	a.saveWaiting = false
	a.timers.arm(&a.saveTimer, a.opts.SaveDelay, a.save)

	return nil
}

func (a *Autosaver) Value(field domain.SettingsField) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.values[field]
}

// Invalid returns the invalid items of a field.
func (a *Autosaver) Invalid(field domain.SettingsField) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.invalid[field])
}

func (a *Autosaver) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case !a.loaded:
		return StateUnloaded
	case a.saving:
		return StateSaving
	case a.validating:
		return StateValidating
	case a.dirty:
		return StateDirty
	}

	return StateLoaded
}

// Err returns the error of the last save attempt.
func (a *Autosaver) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastErr
}

func (a *Autosaver) hasInvalidLocked() bool {
	for _, items := range a.invalid {
		if len(items) > 0 {
			return true
		}
	}

	return false
}

func (a *Autosaver) save() {
	a.mu.Lock()
	if a.closed || !a.dirty || a.saving {
		a.mu.Unlock()

		return
	}
	if a.validating {
		// retried once the validation settles
		a.saveWaiting = true
		a.mu.Unlock()

		return
	}
	if a.hasInvalidLocked() {
		a.mu.Unlock()

		return
	}
	a.saving = true
	edits := a.edits
	in := a.snapshot()
	a.mu.Unlock()

	out, err := a.api.UpdateSettings(a.ctx, in)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()

		return
	}
	a.saving = false
	a.lastErr = err
	switch {
	case edits != a.edits:
		// edited while saving
		a.timers.arm(&a.saveTimer, a.opts.SaveDelay, a.save)
	case err == nil:
		a.apply(out)
		a.dirty = false
	}
	onSave := a.opts.OnSave
	a.mu.Unlock()

	if onSave != nil {
		onSave(out, err)
	}
}

func (a *Autosaver) validate() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()

		return
	}
	rev := a.locationRev
	raw := a.values[domain.FieldLocations]
	a.mu.Unlock()

	var invalid []string
	if strings.TrimSpace(raw) != "" {
		res, err := a.api.ValidateLocations(a.ctx, raw)
		if err != nil {
			// unverifiable codes count as invalid
			invalid = locationTokens(raw)
		} else {
			invalid = res.Invalid
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || rev != a.locationRev {
		return
	}
	a.validating = false
	a.invalid[domain.FieldLocations] = invalid
	if a.saveWaiting {
		a.saveWaiting = false
		a.timers.arm(&a.saveTimer, 0, a.save)
	}
}

func locationTokens(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}

	return out
}

// Close cancels pending timers and in-flight requests. Unsaved edits are
// discarded.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	a.timers.stop(&a.saveTimer)
	a.timers.stop(&a.validateTimer)
	a.mu.Unlock()

	a.cancel()
	a.timers.wait()
}
