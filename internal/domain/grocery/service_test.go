package grocery

import (
	"context"
	"errors"
	"sort"
	"testing"
)

// fakeGroceryRepo snapshots its state around Transaction so rollback
// behavior can be asserted.
type fakeGroceryRepo struct {
	nextID        uint
	items         map[uint]*Grocery
	lists         map[List]map[uint]map[uint]bool
	failAddToList bool
}

func newFakeGroceryRepo() *fakeGroceryRepo {
	return &fakeGroceryRepo{
		items: make(map[uint]*Grocery),
		lists: map[List]map[uint]map[uint]bool{
			GroceryList:  {},
			ShoppingList: {},
		},
	}
}

func (r *fakeGroceryRepo) snapshot() (uint, map[uint]*Grocery, map[List]map[uint]map[uint]bool) {
	items := make(map[uint]*Grocery, len(r.items))
	for id, item := range r.items {
		copied := *item
		items[id] = &copied
	}
	lists := make(map[List]map[uint]map[uint]bool, len(r.lists))
	for list, households := range r.lists {
		lists[list] = make(map[uint]map[uint]bool, len(households))
		for householdID, members := range households {
			lists[list][householdID] = make(map[uint]bool, len(members))
			for groceryID := range members {
				lists[list][householdID][groceryID] = true
			}
		}
	}
	return r.nextID, items, lists
}

func (r *fakeGroceryRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	nextID, items, lists := r.snapshot()
	if err := fn(r); err != nil {
		r.nextID, r.items, r.lists = nextID, items, lists
		return err
	}
	return nil
}

func (r *fakeGroceryRepo) ListByHousehold(ctx context.Context, householdID uint) ([]Grocery, error) {
	var result []Grocery
	for _, item := range r.items {
		if item.HouseholdID == householdID {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeGroceryRepo) GetByID(ctx context.Context, householdID, id uint) (*Grocery, error) {
	found, ok := r.items[id]
	if !ok || found.HouseholdID != householdID {
		return nil, ErrGroceryNotFound
	}
	copied := *found
	return &copied, nil
}

func (r *fakeGroceryRepo) Create(ctx context.Context, grocery *Grocery) error {
	r.nextID++
	grocery.ID = r.nextID
	copied := *grocery
	r.items[grocery.ID] = &copied
	return nil
}

func (r *fakeGroceryRepo) Update(ctx context.Context, grocery *Grocery) error {
	found, ok := r.items[grocery.ID]
	if !ok || found.HouseholdID != grocery.HouseholdID {
		return ErrGroceryNotFound
	}
	copied := *grocery
	r.items[grocery.ID] = &copied
	return nil
}

func (r *fakeGroceryRepo) Delete(ctx context.Context, householdID, id uint) (bool, error) {
	found, ok := r.items[id]
	if !ok || found.HouseholdID != householdID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *fakeGroceryRepo) ListMembers(ctx context.Context, householdID uint, list List) ([]Grocery, error) {
	result := make([]Grocery, 0)
	for groceryID := range r.lists[list][householdID] {
		if item, ok := r.items[groceryID]; ok {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name > result[j].Name })
	return result, nil
}

func (r *fakeGroceryRepo) AddToList(ctx context.Context, householdID, groceryID uint, list List) error {
	if r.failAddToList {
		return errors.New("membership insert failed")
	}
	if r.lists[list][householdID] == nil {
		r.lists[list][householdID] = make(map[uint]bool)
	}
	r.lists[list][householdID][groceryID] = true
	return nil
}

func TestCreateValidation(t *testing.T) {
	service := NewService(newFakeGroceryRepo())

	if _, err := service.Create(context.Background(), 1, CreateInput{Name: "  ", Quantity: 2}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("empty name err = %v, want ErrNameRequired", err)
	}
	if _, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: -1}); !errors.Is(err, ErrQuantityNegative) {
		t.Fatalf("negative quantity err = %v, want ErrQuantityNegative", err)
	}

	created, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: 0})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Quantity != 0 {
		t.Fatalf("quantity = %d, want zero allowed", created.Quantity)
	}
}

func TestCreateDerivesHouseholdFromCaller(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 7, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.HouseholdID != 7 {
		t.Fatalf("household = %d, want 7", created.HouseholdID)
	}
}

func TestGetScopesToHousehold(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.Get(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := service.Get(context.Background(), 2, created.ID); !errors.Is(err, ErrGroceryNotFound) {
		t.Fatalf("foreign household err = %v, want ErrGroceryNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	quantity := 5
	updated, err := service.Update(context.Background(), 1, created.ID, UpdateInput{Quantity: &quantity})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Milk" || updated.Quantity != 5 {
		t.Fatalf("updated = %+v", updated)
	}

	name := "Oat Milk"
	updated, err = service.Update(context.Background(), 1, created.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Oat Milk" || updated.Quantity != 5 {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestUpdateValidatesOwnershipAndInput(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Stolen"
	if _, err := service.Update(context.Background(), 2, created.ID, UpdateInput{Name: &name}); !errors.Is(err, ErrGroceryNotFound) {
		t.Fatalf("foreign update err = %v, want ErrGroceryNotFound", err)
	}

	negative := -3
	if _, err := service.Update(context.Background(), 1, created.ID, UpdateInput{Quantity: &negative}); !errors.Is(err, ErrQuantityNegative) {
		t.Fatalf("err = %v, want ErrQuantityNegative", err)
	}
	if repo.items[created.ID].Quantity != 2 {
		t.Fatal("failed update must not mutate the row")
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.Create(context.Background(), 1, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := service.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := service.Delete(context.Background(), 1, created.ID); !errors.Is(err, ErrGroceryNotFound) {
		t.Fatalf("second delete err = %v, want ErrGroceryNotFound", err)
	}
}

func TestCreateInListFilesItemIntoOneList(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	created, err := service.CreateInList(context.Background(), 1, GroceryList, CreateInput{Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("CreateInList: %v", err)
	}
	if created.HouseholdID != 1 {
		t.Fatalf("household = %d, want 1", created.HouseholdID)
	}

	groceries, err := service.ListView(context.Background(), 1, GroceryList)
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}
	if len(groceries) != 1 || groceries[0].Name != "Milk" {
		t.Fatalf("grocery list = %v", groceries)
	}

	shopping, err := service.ListView(context.Background(), 1, ShoppingList)
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}
	if len(shopping) != 0 {
		t.Fatalf("shopping list = %v, want empty", shopping)
	}
}

func TestCreateInListRollsBackOnMembershipFailure(t *testing.T) {
	repo := newFakeGroceryRepo()
	repo.failAddToList = true
	service := NewService(repo)

	if _, err := service.CreateInList(context.Background(), 1, GroceryList, CreateInput{Name: "Milk", Quantity: 2}); err == nil {
		t.Fatal("expected error from membership insert")
	}
	if len(repo.items) != 0 {
		t.Fatal("orphan grocery survived a failed membership insert")
	}
}

func TestCreateInListRejectsUnknownList(t *testing.T) {
	service := NewService(newFakeGroceryRepo())

	if _, err := service.CreateInList(context.Background(), 1, List("wish"), CreateInput{Name: "Milk", Quantity: 2}); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("err = %v, want ErrUnknownList", err)
	}
	if _, err := service.ListView(context.Background(), 1, List("wish")); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("err = %v, want ErrUnknownList", err)
	}
}

func TestListViewOrderedByNameDescending(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	for _, name := range []string{"Apples", "Milk", "Bread"} {
		if _, err := service.CreateInList(context.Background(), 1, ShoppingList, CreateInput{Name: name, Quantity: 1}); err != nil {
			t.Fatalf("CreateInList(%q): %v", name, err)
		}
	}

	items, err := service.ListView(context.Background(), 1, ShoppingList)
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}

	want := []string{"Milk", "Bread", "Apples"}
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Fatalf("items[%d] = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestListViewScopedToHousehold(t *testing.T) {
	repo := newFakeGroceryRepo()
	service := NewService(repo)

	if _, err := service.CreateInList(context.Background(), 1, GroceryList, CreateInput{Name: "Milk", Quantity: 2}); err != nil {
		t.Fatalf("CreateInList: %v", err)
	}

	other, err := service.ListView(context.Background(), 2, GroceryList)
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("other household sees %v, want nothing", other)
	}
}

func TestGroceryStringForm(t *testing.T) {
	item := Grocery{Name: "Milk", Quantity: 2}
	if got := item.String(); got != "Milk: 2" {
		t.Fatalf("String() = %q, want %q", got, "Milk: 2")
	}
}
