package household

import (
	"context"
	"errors"
	"testing"
)

type fakeHouseholdRepo struct {
	nextID     uint
	households map[uint]*Household
	links      map[uint]uint
}

func newFakeHouseholdRepo() *fakeHouseholdRepo {
	return &fakeHouseholdRepo{
		households: make(map[uint]*Household),
		links:      make(map[uint]uint),
	}
}

func (r *fakeHouseholdRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeHouseholdRepo) GetByID(ctx context.Context, id uint) (*Household, error) {
	found, ok := r.households[id]
	if !ok {
		return nil, ErrHouseholdNotFound
	}
	copied := *found
	return &copied, nil
}

func (r *fakeHouseholdRepo) Create(ctx context.Context, household *Household) error {
	r.nextID++
	household.ID = r.nextID
	copied := *household
	r.households[household.ID] = &copied
	return nil
}

func (r *fakeHouseholdRepo) NameTaken(ctx context.Context, name string) (bool, error) {
	for _, found := range r.households {
		if found.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHouseholdRepo) UpdateName(ctx context.Context, id uint, name string) error {
	found, ok := r.households[id]
	if !ok {
		return ErrHouseholdNotFound
	}
	found.Name = name
	return nil
}

func (r *fakeHouseholdRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.households[id]; !ok {
		return false, nil
	}
	delete(r.households, id)
	return true, nil
}

func (r *fakeHouseholdRepo) LinkUser(ctx context.Context, userID, householdID uint) error {
	r.links[userID] = householdID
	return nil
}

func uintPtr(value uint) *uint {
	return &value
}

func TestListForCallerWithoutHouseholdIsEmpty(t *testing.T) {
	service := NewService(newFakeHouseholdRepo())

	items, err := service.ListForCaller(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListForCaller: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}
}

func TestListForCallerReturnsOnlyOwnHousehold(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	mine, err := service.Create(context.Background(), 1, nil, "Mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := service.Create(context.Background(), 2, nil, "Other"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := service.ListForCaller(context.Background(), &mine.ID)
	if err != nil {
		t.Fatalf("ListForCaller: %v", err)
	}
	if len(items) != 1 || items[0].ID != mine.ID {
		t.Fatalf("items = %v, want only household %d", items, mine.ID)
	}
}

func TestCreateLinksUnlinkedCaller(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 42, nil, "Test Household")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if repo.links[42] != created.ID {
		t.Fatalf("link = %d, want %d", repo.links[42], created.ID)
	}
}

func TestCreateLeavesLinkedCallerAlone(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	if _, err := service.Create(context.Background(), 42, uintPtr(7), "Test Household"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, linked := repo.links[42]; linked {
		t.Fatal("caller already in a household must not be relinked")
	}
}

func TestCreateValidation(t *testing.T) {
	service := NewService(newFakeHouseholdRepo())

	if _, err := service.Create(context.Background(), 1, nil, "   "); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("err = %v, want ErrNameRequired", err)
	}

	if _, err := service.Create(context.Background(), 1, nil, "Test Household"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := service.Create(context.Background(), 2, nil, "Test Household"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestGetScopesToCallerHousehold(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	mine, err := service.Create(context.Background(), 1, nil, "Mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	other, err := service.Create(context.Background(), 2, nil, "Other")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.Get(context.Background(), &mine.ID, mine.ID); err != nil {
		t.Fatalf("Get own household: %v", err)
	}
	if _, err := service.Get(context.Background(), &mine.ID, other.ID); !errors.Is(err, ErrHouseholdNotFound) {
		t.Fatalf("foreign household err = %v, want ErrHouseholdNotFound", err)
	}
	if _, err := service.Get(context.Background(), nil, mine.ID); !errors.Is(err, ErrHouseholdNotFound) {
		t.Fatalf("unlinked caller err = %v, want ErrHouseholdNotFound", err)
	}
}

func TestRename(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, nil, "Old Name")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	renamed, err := service.Rename(context.Background(), &created.ID, created.ID, "New Name")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "New Name" {
		t.Fatalf("name = %q", renamed.Name)
	}
	if repo.households[created.ID].Name != "New Name" {
		t.Fatal("rename not persisted")
	}
}

func TestDeleteOutOfScopeFails(t *testing.T) {
	repo := newFakeHouseholdRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, nil, "Mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := service.Delete(context.Background(), &created.ID, created.ID+1); !errors.Is(err, ErrHouseholdNotFound) {
		t.Fatalf("err = %v, want ErrHouseholdNotFound", err)
	}
	if err := service.Delete(context.Background(), &created.ID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.households) != 0 {
		t.Fatal("household not deleted")
	}
}
