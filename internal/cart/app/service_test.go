package app

import (
	"errors"
	"testing"

	"github.com/recirculate/storefront/internal/cart/domain"
)

type fakeStore struct {
	saved   [][]domain.Line
	initial []domain.Line
	loadErr error
	saveErr error
}

func (f *fakeStore) Load() ([]domain.Line, error) { return f.initial, f.loadErr }
func (f *fakeStore) Save(lines []domain.Line) error {
	cp := make([]domain.Line, len(lines))
	copy(cp, lines)
	f.saved = append(f.saved, cp)
	return f.saveErr
}

func tee() domain.ProductRef {
	return domain.ProductRef{IDKey: 1, Name: "Graphic Tee", Price: 10}
}

func jeans() domain.ProductRef {
	return domain.ProductRef{IDKey: 2, Name: "Jeans", Price: 5}
}

func TestAdd_DedupesByIncrement(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	if err := svc.Add(tee(), 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Add(jeans(), 1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Add(tee(), 3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	lines := svc.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.IDKey != 1 || lines[0].Quantity != 5 {
		t.Fatalf("expected line 0 = product 1 qty 5, got %+v", lines[0])
	}
	if lines[1].Product.IDKey != 2 || lines[1].Quantity != 1 {
		t.Fatalf("expected line 1 = product 2 qty 1, got %+v", lines[1])
	}
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	for _, q := range []int{0, -1} {
		if err := svc.Add(tee(), q); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if len(svc.Lines()) != 0 {
		t.Fatalf("rejected add must not mutate the cart")
	}
}

func TestTotalAndCount(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)
	svc.Add(tee(), 2)
	svc.Add(jeans(), 1)

	if got := svc.Total(); got != 25 {
		t.Fatalf("expected total 25, got %v", got)
	}
	if got := svc.Count(); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}

	svc.Remove(1)
	if got := svc.Total(); got != 5 {
		t.Fatalf("after removal expected total 5, got %v", got)
	}
	if got := svc.Count(); got != 1 {
		t.Fatalf("after removal expected count 1, got %d", got)
	}
}

func TestRemove_AbsentProductIsNoOp(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)
	svc.Add(tee(), 1)

	before := len(store.saved)
	svc.Remove(99)

	if len(svc.Lines()) != 1 {
		t.Fatalf("cart changed by removing absent product")
	}
	if len(store.saved) != before {
		t.Fatalf("no-op removal must not persist")
	}
}

func TestClear(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)
	svc.Add(tee(), 2)
	svc.Clear()

	if len(svc.Lines()) != 0 || svc.Total() != 0 || svc.Count() != 0 {
		t.Fatalf("clear left state behind")
	}
}

func TestEveryMutationPersistsFullSet(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	svc.Add(tee(), 2)
	svc.Add(tee(), 1)
	svc.Remove(1)
	svc.Clear()

	if len(store.saved) != 4 {
		t.Fatalf("expected 4 persisted snapshots, got %d", len(store.saved))
	}
	if store.saved[1][0].Quantity != 3 {
		t.Fatalf("second snapshot should carry incremented quantity, got %+v", store.saved[1])
	}
	if len(store.saved[3]) != 0 {
		t.Fatalf("final snapshot should be empty, got %+v", store.saved[3])
	}
}

func TestNewService_LoadsPersistedLines(t *testing.T) {
	store := &fakeStore{initial: []domain.Line{{Product: tee(), Quantity: 4}}}
	svc := NewService(store, nil)

	if got := svc.Count(); got != 4 {
		t.Fatalf("expected reloaded count 4, got %d", got)
	}
}

func TestNewService_CorruptStateFallsBackToEmpty(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("corrupt")}
	svc := NewService(store, nil)

	if len(svc.Lines()) != 0 {
		t.Fatalf("expected empty cart on unreadable state")
	}
}

func TestSaveFailureDoesNotFailMutation(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	svc := NewService(store, nil)

	if err := svc.Add(tee(), 1); err != nil {
		t.Fatalf("mutation must succeed despite persist failure, got %v", err)
	}
	if svc.Count() != 1 {
		t.Fatalf("in-memory state must reflect the mutation")
	}
}
