//go:build !integration

package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
)

// memStore is an in-memory backing for every repository the package flows touch.
type memStore struct {
	mu         sync.Mutex
	dishes     map[primitive.ObjectID]model.Dish
	items      map[primitive.ObjectID]model.PackageItem
	packages   map[primitive.ObjectID]model.Package
	addOns     map[primitive.ObjectID]model.AddOn
	categories map[primitive.ObjectID]model.Category
	subs       map[primitive.ObjectID]model.SubCategory
	occasions  map[primitive.ObjectID]model.Occasion
	settings   map[primitive.ObjectID]model.CatererSettings
	order      map[primitive.ObjectID]int
	seq        int
}

func newMemStore() *memStore {
	return &memStore{
		dishes:     map[primitive.ObjectID]model.Dish{},
		items:      map[primitive.ObjectID]model.PackageItem{},
		packages:   map[primitive.ObjectID]model.Package{},
		addOns:     map[primitive.ObjectID]model.AddOn{},
		categories: map[primitive.ObjectID]model.Category{},
		subs:       map[primitive.ObjectID]model.SubCategory{},
		occasions:  map[primitive.ObjectID]model.Occasion{},
		settings:   map[primitive.ObjectID]model.CatererSettings{},
		order:      map[primitive.ObjectID]int{},
	}
}

// tick orders items by creation like the created_at sort of the real repository.
func (s *memStore) tick() int {
	s.seq++
	return s.seq
}

func (s *memStore) addCategory(name string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Category{ID: primitive.NewObjectID(), Name: name}
	s.categories[c.ID] = c
	return c
}

func (s *memStore) addOccasion(name string) model.Occasion {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := model.Occasion{ID: primitive.NewObjectID(), Name: name}
	s.occasions[o.ID] = o
	return o
}

func (s *memStore) addDish(catererID, categoryID primitive.ObjectID, name, price string, pieces int) model.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := model.Dish{
		ID:         primitive.NewObjectID(),
		CatererID:  catererID,
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Currency:   "EUR",
		Pieces:     pieces,
		IsActive:   true,
	}
	s.dishes[d.ID] = d
	return d
}

func (s *memStore) setDishPrice(id primitive.ObjectID, price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.dishes[id]
	d.Price = decimal.RequireFromString(price)
	s.dishes[id] = d
}

func (s *memStore) setMinimumGuests(catererID primitive.ObjectID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[catererID] = model.CatererSettings{CatererID: catererID, MinimumGuests: &n}
}

func (s *memStore) item(id primitive.ObjectID) model.PackageItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *memStore) pkg(id primitive.ObjectID) (model.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packages[id]
	return p, ok
}

func (s *memStore) counts() (packages, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.packages), len(s.items)
}

type memTx struct{}

func (memTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memDishes struct{ s *memStore }

func (r memDishes) Create(_ context.Context, d *model.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	r.s.dishes[d.ID] = *d
	return nil
}

func (r memDishes) GetByID(_ context.Context, id primitive.ObjectID) (*model.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dishes[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r memDishes) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Dish{}
	for _, id := range ids {
		if d, ok := r.s.dishes[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memDishes) ListByCaterer(_ context.Context, catererID primitive.ObjectID, f repository.DishFilter) ([]model.Dish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Dish{}
	for _, d := range r.s.dishes {
		if d.CatererID != catererID || (f.ActiveOnly && !d.IsActive) || (f.CategoryID != nil && d.CategoryID != *f.CategoryID) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memDishes) Update(_ context.Context, d *model.Dish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dishes[d.ID]; !ok {
		return model.ErrDishNotFound
	}
	r.s.dishes[d.ID] = *d
	return nil
}

func (r memDishes) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.dishes, id)
	return nil
}

type memItems struct{ s *memStore }

func (r memItems) Create(_ context.Context, item *model.PackageItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.s.order[item.ID] = r.s.tick()
	r.s.items[item.ID] = *item
	return nil
}

func (r memItems) CreateMany(ctx context.Context, items []*model.PackageItem) error {
	for _, item := range items {
		if err := r.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r memItems) GetByID(_ context.Context, id primitive.ObjectID) (*model.PackageItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r memItems) GetByIDsForCaterer(_ context.Context, catererID primitive.ObjectID, ids []primitive.ObjectID) ([]model.PackageItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.PackageItem{}
	for _, id := range ids {
		if item, ok := r.s.items[id]; ok && item.CatererID == catererID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r memItems) filter(keep func(model.PackageItem) bool) []model.PackageItem {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.PackageItem{}
	for _, item := range r.s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] < r.s.order[out[j].ID] })
	return out
}

func (r memItems) ListByCaterer(_ context.Context, catererID primitive.ObjectID, draftOnly bool) ([]model.PackageItem, error) {
	return r.filter(func(i model.PackageItem) bool {
		return i.CatererID == catererID && (!draftOnly || i.Attachment.IsDraft())
	}), nil
}

func (r memItems) ListByPackage(_ context.Context, packageID primitive.ObjectID) ([]model.PackageItem, error) {
	return r.filter(func(i model.PackageItem) bool { return i.Attachment.IsAttachedTo(packageID) }), nil
}

func (r memItems) Update(_ context.Context, item *model.PackageItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return model.ErrItemNotFound
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r memItems) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r memItems) Link(_ context.Context, catererID, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched int64
	for _, id := range ids {
		item, ok := r.s.items[id]
		if !ok || item.CatererID != catererID {
			continue
		}
		item.Attachment = model.AttachedTo(packageID)
		r.s.items[id] = item
		matched++
	}
	return matched, nil
}

func (r memItems) Unlink(_ context.Context, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	only := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		only[id] = true
	}
	var modified int64
	for id, item := range r.s.items {
		if !item.Attachment.IsAttachedTo(packageID) || (len(ids) > 0 && !only[id]) {
			continue
		}
		item.Attachment = model.Unattached()
		r.s.items[id] = item
		modified++
	}
	return modified, nil
}

func (r memItems) CountByDish(_ context.Context, dishID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, item := range r.s.items {
		if item.DishID == dishID {
			n++
		}
	}
	return n, nil
}

type memPackages struct{ s *memStore }

func (r memPackages) Create(_ context.Context, p *model.Package) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.Revision = 1
	r.s.packages[p.ID] = *p
	return nil
}

func (r memPackages) GetByID(_ context.Context, id primitive.ObjectID) (*model.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.packages[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memPackages) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Package{}
	for _, id := range ids {
		if p, ok := r.s.packages[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPackages) ListByCaterer(_ context.Context, catererID primitive.ObjectID) ([]model.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Package{}
	for _, p := range r.s.packages {
		if p.CatererID == catererID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPackages) Update(_ context.Context, p *model.Package) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.packages[p.ID]
	if !ok || stored.Revision != p.Revision {
		return model.ErrConcurrentModification
	}
	p.Revision++
	r.s.packages[p.ID] = *p
	return nil
}

func (r memPackages) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.packages, id)
	return nil
}

type memAddOns struct{ s *memStore }

func (r memAddOns) Create(_ context.Context, a *model.AddOn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	r.s.addOns[a.ID] = *a
	return nil
}

func (r memAddOns) GetByID(_ context.Context, packageID, id primitive.ObjectID) (*model.AddOn, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.addOns[id]
	if !ok || a.PackageID != packageID {
		return nil, nil
	}
	return &a, nil
}

func (r memAddOns) ListByPackage(_ context.Context, packageID primitive.ObjectID) ([]model.AddOn, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.AddOn{}
	for _, a := range r.s.addOns {
		if a.PackageID == packageID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memAddOns) Update(_ context.Context, a *model.AddOn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.addOns[a.ID] = *a
	return nil
}

func (r memAddOns) Delete(_ context.Context, packageID, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a, ok := r.s.addOns[id]; ok && a.PackageID == packageID {
		delete(r.s.addOns, id)
	}
	return nil
}

func (r memAddOns) DeleteByPackage(_ context.Context, packageID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, a := range r.s.addOns {
		if a.PackageID == packageID {
			delete(r.s.addOns, id)
			n++
		}
	}
	return n, nil
}

type memCatalog struct{ s *memStore }

func (r memCatalog) GetCategory(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCatalog) ListCategories(_ context.Context) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Category{}
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memCatalog) GetCategoriesByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Category{}
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCatalog) GetSubCategory(_ context.Context, id primitive.ObjectID) (*model.SubCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sc, ok := r.s.subs[id]
	if !ok {
		return nil, nil
	}
	return &sc, nil
}

func (r memCatalog) ListOccasions(_ context.Context) ([]model.Occasion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Occasion{}
	for _, o := range r.s.occasions {
		out = append(out, o)
	}
	return out, nil
}

func (r memCatalog) GetOccasionsByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Occasion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Occasion{}
	for _, id := range ids {
		if o, ok := r.s.occasions[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type memCaterers struct{ s *memStore }

func (r memCaterers) GetSettings(_ context.Context, catererID primitive.ObjectID) (*model.CatererSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.settings[catererID]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r memCaterers) UpsertSettings(_ context.Context, st *model.CatererSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings[st.CatererID] = *st
	return nil
}
