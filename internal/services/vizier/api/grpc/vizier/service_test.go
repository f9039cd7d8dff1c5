package vizier

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	vizierv1 "github.com/ssoudan/oss-vizier/api/gen/go/vizier/v1"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
)

// fakeStore is an in-memory storage.Store for servicer tests. Like the real
// store it is safe for concurrent use.
type fakeStore struct {
	mu      sync.Mutex
	studies map[string]storage.StudyRecord
	trials  map[string]storage.TrialRecord

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		studies: make(map[string]storage.StudyRecord),
		trials:  make(map[string]storage.TrialRecord),
	}
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) CreateStudy(_ context.Context, record storage.StudyRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.studies[record.Name]; ok {
		return storage.ErrAlreadyExists
	}
	f.studies[record.Name] = record
	return nil
}

func (f *fakeStore) GetStudy(_ context.Context, name string) (storage.StudyRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.StudyRecord{}, f.failWith
	}
	record, ok := f.studies[name]
	if !ok {
		return storage.StudyRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) ListStudies(_ context.Context, owner string, pageSize int, cursor string) (storage.StudyPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.StudyPage{}, f.failWith
	}
	if pageSize <= 0 {
		return storage.StudyPage{}, fmt.Errorf("page size must be greater than zero")
	}
	var matched []storage.StudyRecord
	for _, record := range f.studies {
		if record.Owner == owner && record.Name > cursor {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	var page storage.StudyPage
	if len(matched) > pageSize {
		page.Studies = matched[:pageSize]
		page.NextCursor = matched[pageSize-1].Name
	} else {
		page.Studies = matched
	}
	return page, nil
}

func (f *fakeStore) DeleteStudy(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.studies[name]; !ok {
		return storage.ErrNotFound
	}
	delete(f.studies, name)
	for trialName, record := range f.trials {
		if record.StudyName == name {
			delete(f.trials, trialName)
		}
	}
	return nil
}

func (f *fakeStore) CreateTrial(_ context.Context, record storage.TrialRecord) (storage.TrialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.TrialRecord{}, f.failWith
	}
	if _, ok := f.studies[record.StudyName]; !ok {
		return storage.TrialRecord{}, storage.ErrNotFound
	}
	var maxID int64
	for _, existing := range f.trials {
		if existing.StudyName == record.StudyName && existing.TrialID > maxID {
			maxID = existing.TrialID
		}
	}
	record.TrialID = maxID + 1
	record.Name = fmt.Sprintf("%s/trials/%d", record.StudyName, record.TrialID)
	f.trials[record.Name] = record
	return record, nil
}

func (f *fakeStore) GetTrial(_ context.Context, name string) (storage.TrialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.TrialRecord{}, f.failWith
	}
	record, ok := f.trials[name]
	if !ok {
		return storage.TrialRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) UpdateTrial(_ context.Context, record storage.TrialRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.trials[record.Name]; !ok {
		return storage.ErrNotFound
	}
	f.trials[record.Name] = record
	return nil
}

func (f *fakeStore) MutateTrial(_ context.Context, name string, mutate func(*storage.TrialRecord) error) (storage.TrialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.TrialRecord{}, f.failWith
	}
	record, ok := f.trials[name]
	if !ok {
		return storage.TrialRecord{}, storage.ErrNotFound
	}
	if err := mutate(&record); err != nil {
		return storage.TrialRecord{}, err
	}
	record.Name = name
	f.trials[name] = record
	return record, nil
}

func (f *fakeStore) ListTrials(_ context.Context, studyName string, pageSize int, cursor string) (storage.TrialPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return storage.TrialPage{}, f.failWith
	}
	if pageSize <= 0 {
		return storage.TrialPage{}, fmt.Errorf("page size must be greater than zero")
	}
	afterID := int64(0)
	if cursor != "" {
		if _, err := fmt.Sscanf(cursor, "%d", &afterID); err != nil {
			return storage.TrialPage{}, fmt.Errorf("invalid trial cursor %q", cursor)
		}
	}
	var matched []storage.TrialRecord
	for _, record := range f.trials {
		if record.StudyName == studyName && record.TrialID > afterID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].TrialID < matched[j].TrialID })

	var page storage.TrialPage
	if len(matched) > pageSize {
		page.Trials = matched[:pageSize]
		page.NextCursor = fmt.Sprintf("%d", matched[pageSize-1].TrialID)
	} else {
		page.Trials = matched
	}
	return page, nil
}

func (f *fakeStore) DeleteTrial(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.trials[name]; !ok {
		return storage.ErrNotFound
	}
	delete(f.trials, name)
	return nil
}

func (f *fakeStore) TrialsForClient(_ context.Context, studyName, clientID string) ([]storage.TrialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}
	var matched []storage.TrialRecord
	for _, record := range f.trials {
		if record.StudyName != studyName || record.ClientID != clientID {
			continue
		}
		if record.State == storage.TrialStateRequested || record.State == storage.TrialStateActive {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].TrialID < matched[j].TrialID })
	return matched, nil
}

func (f *fakeStore) TrialsInState(_ context.Context, state storage.TrialState) ([]storage.TrialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}
	var matched []storage.TrialRecord
	for _, record := range f.trials {
		if record.State == state {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].StudyName != matched[j].StudyName {
			return matched[i].StudyName < matched[j].StudyName
		}
		return matched[i].TrialID < matched[j].TrialID
	})
	return matched, nil
}

var testClockTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// newTestService wires a Service to a fake store with a fixed clock and a
// deterministic random source.
func newTestService(store storage.Store) *Service {
	return &Service{
		store: store,
		clock: func() time.Time { return testClockTime },
		rng:   rand.New(rand.NewPCG(1, 2)),
	}
}

func searchSpec() *vizierv1.StudySpec {
	return &vizierv1.StudySpec{
		Metrics: []*vizierv1.StudySpec_MetricSpec{{
			MetricId: "loss",
			Goal:     vizierv1.StudySpec_MetricSpec_MINIMIZE,
		}},
		Parameters: []*vizierv1.StudySpec_ParameterSpec{
			{
				ParameterId: "learning_rate",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec_{
					DoubleValueSpec: &vizierv1.StudySpec_ParameterSpec_DoubleValueSpec{
						MinValue: 0.001, MaxValue: 0.1,
					},
				},
			},
			{
				ParameterId: "layers",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec_{
					IntegerValueSpec: &vizierv1.StudySpec_ParameterSpec_IntegerValueSpec{
						MinValue: 1, MaxValue: 4,
					},
				},
			},
			{
				ParameterId: "optimizer",
				ParameterValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec_{
					CategoricalValueSpec: &vizierv1.StudySpec_ParameterSpec_CategoricalValueSpec{
						Values: []string{"adam", "sgd"},
					},
				},
			},
		},
	}
}

// seedStudy inserts a study directly into the fake store and returns its name.
func seedStudy(store *fakeStore, owner, studyID string) string {
	name := fmt.Sprintf("owners/%s/studies/%s", owner, studyID)
	store.studies[name] = storage.StudyRecord{
		Name:        name,
		Owner:       "owners/" + owner,
		StudyID:     studyID,
		DisplayName: studyID,
		State:       storage.StudyStateActive,
		Spec:        searchSpec(),
		CreateTime:  testClockTime,
	}
	return name
}
