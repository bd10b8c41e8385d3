package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"placemark/internal/models/db_models"
	"placemark/pkg/blobstore"
)

// fakeStore backs every repository interface and the blob store with
// in-memory maps, so the cascade workflows can be exercised end to
// end without Postgres or S3.
type fakeStore struct {
	users      map[uuid.UUID]db_models.User
	categories map[uuid.UUID]db_models.Category
	pois       map[uuid.UUID]db_models.POI
	images     map[uuid.UUID]db_models.Image
	blobs      map[string][]byte

	seq int64

	putErr          error
	removeErr       error
	imageDeleteErrs map[uuid.UUID]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:           make(map[uuid.UUID]db_models.User),
		categories:      make(map[uuid.UUID]db_models.Category),
		pois:            make(map[uuid.UUID]db_models.POI),
		images:          make(map[uuid.UUID]db_models.Image),
		blobs:           make(map[string][]byte),
		imageDeleteErrs: make(map[uuid.UUID]error),
	}
}

func (s *fakeStore) nextSeq() int64 {
	s.seq++
	return s.seq
}

// ---- UserRepository ----

func (s *fakeStore) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeStore) Update(_ context.Context, user *db_models.User) error {
	s.users[user.ID] = *user
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *fakeStore) FindById(_ context.Context, id string) (*db_models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if user, ok := s.users[uid]; ok {
		copied := user
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) List(_ context.Context) ([]db_models.User, error) {
	users := make([]db_models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// categoryRepo wraps fakeStore because CategoryRepository and
// UserRepository share method names with different signatures.
type categoryRepo struct{ s *fakeStore }

func (c categoryRepo) Create(_ context.Context, category *db_models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	c.s.categories[category.ID] = *category
	return nil
}

func (c categoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(c.s.categories, id)
	return nil
}

func (c categoryRepo) DeleteAll(_ context.Context) error {
	c.s.categories = make(map[uuid.UUID]db_models.Category)
	return nil
}

func (c categoryRepo) FindById(_ context.Context, id string) (*db_models.Category, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if category, ok := c.s.categories[uid]; ok {
		copied := category
		return &copied, nil
	}
	return nil, nil
}

func (c categoryRepo) FindByName(_ context.Context, name string) (*db_models.Category, error) {
	for _, category := range c.s.categories {
		if strings.EqualFold(category.Name, name) {
			copied := category
			return &copied, nil
		}
	}
	return nil, nil
}

func (c categoryRepo) List(_ context.Context) ([]db_models.Category, error) {
	categories := make([]db_models.Category, 0, len(c.s.categories))
	for _, category := range c.s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// poiRepo wraps fakeStore for the POIRepository interface.
type poiRepo struct{ s *fakeStore }

func (p poiRepo) Create(_ context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if poi.ID == uuid.Nil {
		poi.ID = uuid.New()
	}
	poi.CreatedAt = p.s.nextSeq()
	p.s.pois[poi.ID] = *poi
	return poi.ID, nil
}

func (p poiRepo) Update(_ context.Context, poi *db_models.POI) error {
	p.s.pois[poi.ID] = *poi
	return nil
}

func (p poiRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(p.s.pois, id)
	return nil
}

func (p poiRepo) GetByIDWithImages(_ context.Context, id string) (*db_models.POI, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	poi, ok := p.s.pois[uid]
	if !ok {
		return nil, nil
	}
	copied := poi
	copied.Images = p.s.imagesOf(uid)
	if user, ok := p.s.users[poi.UserID]; ok {
		copied.User = user
	}
	if poi.CategoryID != nil {
		if category, ok := p.s.categories[*poi.CategoryID]; ok {
			copied.Category = &category
		}
	}
	return &copied, nil
}

func (p poiRepo) ListByUser(_ context.Context, userID string, categoryID *uuid.UUID) ([]db_models.POI, error) {
	var pois []db_models.POI
	for id, poi := range p.s.pois {
		if poi.UserID.String() != userID {
			continue
		}
		if categoryID != nil && (poi.CategoryID == nil || *poi.CategoryID != *categoryID) {
			continue
		}
		copied := poi
		copied.Images = p.s.imagesOf(id)
		pois = append(pois, copied)
	}
	return pois, nil
}

func (p poiRepo) ListByCategory(_ context.Context, categoryID uuid.UUID) ([]db_models.POI, error) {
	var pois []db_models.POI
	for _, poi := range p.s.pois {
		if poi.CategoryID != nil && *poi.CategoryID == categoryID {
			pois = append(pois, poi)
		}
	}
	return pois, nil
}

func (p poiRepo) List(_ context.Context) ([]db_models.POI, error) {
	pois := make([]db_models.POI, 0, len(p.s.pois))
	for _, poi := range p.s.pois {
		pois = append(pois, poi)
	}
	return pois, nil
}

// imageRepo wraps fakeStore for the ImageRepository interface.
type imageRepo struct{ s *fakeStore }

func (i imageRepo) Create(_ context.Context, image *db_models.Image) (uuid.UUID, error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	image.CreatedAt = i.s.nextSeq()
	i.s.images[image.ID] = *image
	return image.ID, nil
}

func (i imageRepo) DeleteById(_ context.Context, id uuid.UUID) error {
	if err, ok := i.s.imageDeleteErrs[id]; ok {
		return err
	}
	delete(i.s.images, id)
	return nil
}

func (i imageRepo) FindById(_ context.Context, id string) (*db_models.Image, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if image, ok := i.s.images[uid]; ok {
		copied := image
		return &copied, nil
	}
	return nil, nil
}

func (i imageRepo) ListByPoi(_ context.Context, poiID uuid.UUID) ([]db_models.Image, error) {
	return i.s.imagesOf(poiID), nil
}

func (s *fakeStore) imagesOf(poiID uuid.UUID) []db_models.Image {
	var images []db_models.Image
	for _, image := range s.images {
		if image.POIID == poiID {
			images = append(images, image)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].CreatedAt < images[j].CreatedAt })
	return images
}

// ---- blobstore.Store ----

type fakeBlobs struct{ s *fakeStore }

func (b fakeBlobs) Put(_ context.Context, data []byte, _ string) (blobstore.Object, error) {
	if b.s.putErr != nil {
		return blobstore.Object{}, b.s.putErr
	}
	handle := fmt.Sprintf("images/%s", uuid.New().String())
	b.s.blobs[handle] = data
	return blobstore.Object{Handle: handle, URL: "https://img.example.com/" + handle}, nil
}

func (b fakeBlobs) Remove(_ context.Context, handle string) error {
	if b.s.removeErr != nil {
		return b.s.removeErr
	}
	delete(b.s.blobs, handle)
	return nil
}

// wiring helper: full service stack over one fakeStore.
func newServices(s *fakeStore) (ImageServiceInterface, POIServiceInterface, CategoryServiceInterface) {
	imageSvc := NewImageService(imageRepo{s}, poiRepo{s}, fakeBlobs{s})
	poiSvc := NewPOIService(poiRepo{s}, s, categoryRepo{s}, imageSvc)
	categorySvc := NewCategoryService(categoryRepo{s}, poiRepo{s}, poiSvc)
	return imageSvc, poiSvc, categorySvc
}

// seeding helpers

func seedUser(s *fakeStore, email string, numOfPoi int) db_models.User {
	user := db_models.User{Email: email, FirstName: "Test", LastName: "User", NumOfPoi: numOfPoi}
	user.ID = uuid.New()
	s.users[user.ID] = user
	return user
}

func seedCategory(s *fakeStore, name string) db_models.Category {
	category := db_models.Category{Name: name}
	category.ID = uuid.New()
	s.categories[category.ID] = category
	return category
}

func seedPoi(s *fakeStore, userID uuid.UUID, categoryID *uuid.UUID, name string) db_models.POI {
	poi := db_models.POI{Name: name, UserID: userID, CategoryID: categoryID}
	poi.ID = uuid.New()
	poi.CreatedAt = s.nextSeq()
	s.pois[poi.ID] = poi
	return poi
}

func seedImage(s *fakeStore, poiID uuid.UUID) db_models.Image {
	handle := fmt.Sprintf("images/%s", uuid.New().String())
	s.blobs[handle] = []byte("bytes")
	image := db_models.Image{PublicID: handle, URL: "https://img.example.com/" + handle, POIID: poiID}
	image.ID = uuid.New()
	image.CreatedAt = s.nextSeq()
	s.images[image.ID] = image
	return image
}
