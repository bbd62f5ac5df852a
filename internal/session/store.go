// Package session owns the job catalog and the state of one user's session.
// All mutation goes through the transition methods of Store.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/catalog"
	"jobportal-engine/internal/domain"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrAlreadyApplied    = errors.New("job already applied to")
	ErrNoJobSelected     = errors.New("no job selected")
	ErrInvalidTransition = errors.New("invalid session transition")
)

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	State       State                       `json:"state"`
	SelectedJob *domain.JobPosting          `json:"selectedJob"`
	FormData    *domain.ApplicationFormData `json:"formData"`
	// Seq is the number of the last transition reflected here. Events carry
	// the same number, so a client can tell which events a snapshot covers.
	Seq uint64 `json:"seq"`
}

// Summary is what the application summary view and the exporters render.
type Summary struct {
	Job  domain.JobPosting          `json:"job"`
	Form domain.ApplicationFormData `json:"form"`
}

type Store struct {
	mu sync.Mutex

	jobs  []domain.JobPosting
	index map[int]int // job id -> position in jobs

	validator *apply.Validator
	notify    Notifier
	log       *slog.Logger

	state    State
	selected int // job id, 0 when nothing was ever selected
	formData *domain.ApplicationFormData
	ledger   map[int]domain.ApplicationFormData
	seq      uint64 // last transition number handed out, guarded by mu

	// Notifications leave in seq order: emitted is the last seq delivered.
	emitMu   sync.Mutex
	emitCond *sync.Cond
	emitted  uint64
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notify = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithValidator(v *apply.Validator) Option {
	return func(s *Store) {
		if v != nil {
			s.validator = v
		}
	}
}

// New creates a store over a copy of jobs. Every posting starts out not
// applied.
func New(jobs []domain.JobPosting, opts ...Option) (*Store, error) {
	if err := catalog.Validate(jobs); err != nil {
		return nil, err
	}

	s := &Store{
		jobs:   make([]domain.JobPosting, len(jobs)),
		index:  make(map[int]int, len(jobs)),
		notify: nopNotifier{},
		log:    slog.Default(),
		ledger: map[int]domain.ApplicationFormData{},
	}
	s.emitCond = sync.NewCond(&s.emitMu)
	for i, j := range jobs {
		j = j.Clone()
		j.Applied = false
		s.jobs[i] = j
		s.index[j.ID] = i
	}
	for _, o := range opts {
		o(s)
	}
	if s.validator == nil {
		s.validator = apply.NewValidator()
	}
	return s, nil
}

// Jobs returns the catalog with the current applied flags.
func (s *Store) Jobs() []domain.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.JobPosting, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.Clone()
	}
	return out
}

// Job looks up one posting by id.
func (s *Store) Job(id int) (domain.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.JobPosting{}, fmt.Errorf("job %d: %w", id, ErrJobNotFound)
	}
	return s.jobs[i].Clone(), nil
}

// Search filters the catalog by title.
func (s *Store) Search(query string) []domain.JobPosting {
	return catalog.Search(s.Jobs(), query)
}

// SelectJob opens the application form for a job. A job that was already
// applied to cannot be selected again.
func (s *Store) SelectJob(id int) (domain.JobPosting, error) {
	s.mu.Lock()

	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return domain.JobPosting{}, fmt.Errorf("select job %d: %w", id, ErrJobNotFound)
	}
	job := s.jobs[i]
	if job.Applied {
		s.mu.Unlock()
		return domain.JobPosting{}, fmt.Errorf("select job %d: %w", id, ErrAlreadyApplied)
	}

	from := s.state
	s.selected = id
	s.state = Viewing
	seq := s.nextSeq()
	s.mu.Unlock()

	s.log.Info("job selected", "job_id", id, "from", from.String(), "seq", seq)
	s.emit(seq, EventJobSelected, map[string]any{"id": id})
	return job.Clone(), nil
}

// SubmitApplication validates the form for the selected job. On success the
// form data becomes the session's current submission, the job is marked as
// applied and the session moves to Applied. A validation failure returns
// apply.FieldErrors and leaves the session unchanged.
func (s *Store) SubmitApplication(f apply.Fields) (domain.ApplicationFormData, error) {
	s.mu.Lock()

	switch s.state {
	case Viewing:
	case Browsing:
		s.mu.Unlock()
		return domain.ApplicationFormData{}, ErrNoJobSelected
	default:
		from := s.state
		s.mu.Unlock()
		return domain.ApplicationFormData{}, fmt.Errorf("submit from %s: %w", from, ErrInvalidTransition)
	}

	i, ok := s.index[s.selected]
	if !ok {
		s.mu.Unlock()
		return domain.ApplicationFormData{}, ErrNoJobSelected
	}
	if s.jobs[i].Applied {
		s.mu.Unlock()
		return domain.ApplicationFormData{}, fmt.Errorf("submit job %d: %w", s.selected, ErrAlreadyApplied)
	}

	data, err := s.validator.Validate(f)
	if err != nil {
		s.mu.Unlock()
		return domain.ApplicationFormData{}, err
	}

	id := s.selected
	stored := data.Clone()
	s.formData = &stored
	s.ledger[id] = data.Clone()
	s.jobs[i].Applied = true
	s.state = Applied
	seq := s.nextSeq()
	s.mu.Unlock()

	s.log.Info("application submitted", "job_id", id, "skills", len(data.Skills), "seq", seq)
	s.emit(seq, EventApplicationSubmitted, map[string]any{"id": id})
	return data, nil
}

// Close returns to browsing. The current submission and the applied flags
// are kept for the rest of the session.
func (s *Store) Close() {
	s.mu.Lock()
	if s.state == Browsing {
		s.mu.Unlock()
		return
	}
	from := s.state
	s.state = Browsing
	seq := s.nextSeq()
	s.mu.Unlock()

	s.log.Info("session closed", "from", from.String(), "seq", seq)
	s.emit(seq, EventSessionClosed, map[string]any{"from": from.String()})
}

// nextSeq numbers a transition. Callers hold mu.
func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// emit waits for every earlier transition to be delivered, then notifies.
// mu is not held here, so notifiers may read the store.
func (s *Store) emit(seq uint64, typ string, data map[string]any) {
	s.emitMu.Lock()
	for s.emitted+1 != seq {
		s.emitCond.Wait()
	}
	s.emitMu.Unlock()

	defer func() {
		s.emitMu.Lock()
		s.emitted = seq
		s.emitCond.Broadcast()
		s.emitMu.Unlock()
	}()

	data["seq"] = seq
	s.notify.Notify(typ, data)
}

// Snapshot returns a deep copy of the session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state, Seq: s.seq}
	if i, ok := s.index[s.selected]; ok {
		j := s.jobs[i].Clone()
		snap.SelectedJob = &j
	}
	if s.formData != nil {
		fd := s.formData.Clone()
		snap.FormData = &fd
	}
	return snap
}

// Summary pairs the selected job with the current submission. It reports
// false when either is missing, which callers show as "nothing to show".
//
// The submission is not keyed by job: after applying to one job and then
// selecting another, the summary shows the new job with the earlier form.
// Application(jobID) gives the per-job view.
func (s *Store) Summary() (Summary, bool) {
	snap := s.Snapshot()
	if snap.SelectedJob == nil || snap.FormData == nil {
		return Summary{}, false
	}
	return Summary{Job: *snap.SelectedJob, Form: *snap.FormData}, true
}

// Application returns the form submitted for a specific job.
func (s *Store) Application(jobID int) (domain.ApplicationFormData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fd, ok := s.ledger[jobID]
	if !ok {
		return domain.ApplicationFormData{}, false
	}
	return fd.Clone(), true
}
