package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brasketbro/lovenest/internal/models"
)

// MemStorage keeps all records in process memory. Fiber handles requests on
// concurrent goroutines, so map access is guarded by a RWMutex; every
// operation applies atomically. Data is lost on restart.
type MemStorage struct {
	mu sync.RWMutex

	users         map[int]models.User
	photos        map[int]models.Photo
	messages      map[int]models.Message
	milestones    map[int]models.Milestone
	bucketItems   map[int]models.BucketItem
	relationships map[int]models.Relationship

	// Per-type id counters; monotonic, never reused after deletion.
	userID         int
	photoID        int
	messageID      int
	milestoneID    int
	bucketItemID   int
	relationshipID int
}

// NewMemStorage builds an empty store and seeds the initial relationship and
// milestone records.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:         make(map[int]models.User),
		photos:        make(map[int]models.Photo),
		messages:      make(map[int]models.Message),
		milestones:    make(map[int]models.Milestone),
		bucketItems:   make(map[int]models.BucketItem),
		relationships: make(map[int]models.Relationship),
	}
	s.seed()
	return s
}

func (s *MemStorage) seed() {
	ctx := context.Background()

	s.CreateRelationship(ctx, models.InsertRelationship{
		StartDate: "2024-03-10",
		Partner1:  "Mehak",
		Partner2:  "Swapnil",
	})

	seedMilestones := []models.InsertMilestone{
		{Title: "Started Talking", Date: "2024-03-10", Description: strptr("We met on a dating app and started talking.")},
		{Title: "Instagram Connection", Date: "2024-03-13", Description: strptr("We moved our conversation to Instagram.")},
		{Title: "Official Relationship", Date: "2024-03-15", Description: strptr("Swapnil proposed and asked Mehak to be his girlfriend. She said yes!")},
	}
	for _, m := range seedMilestones {
		s.CreateMilestone(ctx, m)
	}
}

func strptr(s string) *string { return &s }

// Users

func (s *MemStorage) GetUser(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, insert models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	u := models.User{
		ID:       s.userID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[u.ID] = u
	return &u, nil
}

// Photos

func (s *MemStorage) GetPhotos(_ context.Context) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	photos := make([]models.Photo, 0, len(s.photos))
	for _, p := range s.photos {
		photos = append(photos, p)
	}
	sortByCreatedAtDesc(photos, func(p models.Photo) (time.Time, int) { return p.CreatedAt, p.ID })
	return photos, nil
}

func (s *MemStorage) GetPhotoByID(_ context.Context, id int) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.photos[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStorage) GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error) {
	all, err := s.GetPhotos(ctx)
	if err != nil {
		return nil, err
	}
	photos := make([]models.Photo, 0)
	for _, p := range all {
		if p.Category == category {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

func (s *MemStorage) CreatePhoto(_ context.Context, insert models.InsertPhoto) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoID++
	p := models.Photo{
		ID:        s.photoID,
		Title:     insert.Title,
		ImageURL:  insert.ImageURL,
		Date:      insert.Date,
		Category:  insert.Category,
		Caption:   insert.Caption,
		CreatedAt: time.Now(),
	}
	s.photos[p.ID] = p
	return &p, nil
}

func (s *MemStorage) UpdatePhoto(_ context.Context, id int, update models.PhotoUpdate) (*models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.ImageURL != nil {
		p.ImageURL = *update.ImageURL
	}
	if update.Date != nil {
		p.Date = *update.Date
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Caption != nil {
		p.Caption = update.Caption
	}
	s.photos[id] = p
	return &p, nil
}

func (s *MemStorage) DeletePhoto(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[id]; !ok {
		return false, nil
	}
	delete(s.photos, id)
	return true, nil
}

// Messages

func (s *MemStorage) GetMessages(_ context.Context) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		messages = append(messages, m)
	}
	sortByCreatedAtDesc(messages, func(m models.Message) (time.Time, int) { return m.CreatedAt, m.ID })
	return messages, nil
}

func (s *MemStorage) GetMessageByID(_ context.Context, id int) (*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.messages[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateMessage(_ context.Context, insert models.InsertMessage) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageID++
	m := models.Message{
		ID:        s.messageID,
		Title:     insert.Title,
		Content:   insert.Content,
		Sender:    insert.Sender,
		CreatedAt: time.Now(),
	}
	s.messages[m.ID] = m
	return &m, nil
}

func (s *MemStorage) DeleteMessage(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return false, nil
	}
	delete(s.messages, id)
	return true, nil
}

// Milestones

func (s *MemStorage) GetMilestones(_ context.Context) ([]models.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	milestones := make([]models.Milestone, 0, len(s.milestones))
	for _, m := range s.milestones {
		milestones = append(milestones, m)
	}
	// Chronological by the date field, not by creation time. Dates are ISO
	// YYYY-MM-DD strings, so lexicographic order is date order.
	sort.Slice(milestones, func(i, j int) bool {
		if milestones[i].Date != milestones[j].Date {
			return milestones[i].Date < milestones[j].Date
		}
		return milestones[i].ID < milestones[j].ID
	})
	return milestones, nil
}

func (s *MemStorage) GetMilestoneByID(_ context.Context, id int) (*models.Milestone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.milestones[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateMilestone(_ context.Context, insert models.InsertMilestone) (*models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestoneID++
	m := models.Milestone{
		ID:          s.milestoneID,
		Title:       insert.Title,
		Date:        insert.Date,
		Description: insert.Description,
		CreatedAt:   time.Now(),
	}
	s.milestones[m.ID] = m
	return &m, nil
}

func (s *MemStorage) DeleteMilestone(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.milestones[id]; !ok {
		return false, nil
	}
	delete(s.milestones, id)
	return true, nil
}

// Bucket list

func (s *MemStorage) GetBucketItems(_ context.Context) ([]models.BucketItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.BucketItem, 0, len(s.bucketItems))
	for _, b := range s.bucketItems {
		items = append(items, b)
	}
	// Completed items first, then newest first within each group.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Completed != items[j].Completed {
			return items[i].Completed
		}
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (s *MemStorage) GetBucketItemByID(_ context.Context, id int) (*models.BucketItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bucketItems[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateBucketItem(_ context.Context, insert models.InsertBucketItem) (*models.BucketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucketItemID++
	b := models.BucketItem{
		ID:            s.bucketItemID,
		Title:         insert.Title,
		TargetDate:    insert.TargetDate,
		Notes:         insert.Notes,
		Completed:     insert.Completed,
		CompletedDate: insert.CompletedDate,
		CreatedAt:     time.Now(),
	}
	s.bucketItems[b.ID] = b
	return &b, nil
}

func (s *MemStorage) UpdateBucketItem(_ context.Context, id int, update models.BucketItemUpdate) (*models.BucketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bucketItems[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		b.Title = *update.Title
	}
	if update.TargetDate != nil {
		b.TargetDate = update.TargetDate
	}
	if update.Notes != nil {
		b.Notes = update.Notes
	}
	if update.Completed != nil {
		b.Completed = *update.Completed
	}
	if update.CompletedDate != nil {
		b.CompletedDate = update.CompletedDate
	}
	s.bucketItems[id] = b
	return &b, nil
}

func (s *MemStorage) ToggleBucketItemCompletion(_ context.Context, id int, completed bool, completedDate *string) (*models.BucketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bucketItems[id]
	if !ok {
		return nil, nil
	}
	b.Completed = completed
	if completed {
		if completedDate != nil {
			b.CompletedDate = completedDate
		} else {
			today := time.Now().Format("2006-01-02")
			b.CompletedDate = &today
		}
	} else {
		// Un-completing always clears the date, even when one is supplied.
		b.CompletedDate = nil
	}
	s.bucketItems[id] = b
	return &b, nil
}

func (s *MemStorage) DeleteBucketItem(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bucketItems[id]; !ok {
		return false, nil
	}
	delete(s.bucketItems, id)
	return true, nil
}

// Relationship

func (s *MemStorage) GetRelationship(_ context.Context) (*models.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// The first-created record wins; multiple records are possible but only
	// the lowest id is ever returned.
	var first *models.Relationship
	for id, r := range s.relationships {
		if first == nil || id < first.ID {
			rel := r
			first = &rel
		}
	}
	return first, nil
}

func (s *MemStorage) CreateRelationship(_ context.Context, insert models.InsertRelationship) (*models.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationshipID++
	r := models.Relationship{
		ID:        s.relationshipID,
		StartDate: insert.StartDate,
		Partner1:  insert.Partner1,
		Partner2:  insert.Partner2,
	}
	s.relationships[r.ID] = r
	return &r, nil
}

func (s *MemStorage) UpdateRelationship(_ context.Context, id int, update models.RelationshipUpdate) (*models.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.relationships[id]
	if !ok {
		return nil, nil
	}
	if update.StartDate != nil {
		r.StartDate = *update.StartDate
	}
	if update.Partner1 != nil {
		r.Partner1 = *update.Partner1
	}
	if update.Partner2 != nil {
		r.Partner2 = *update.Partner2
	}
	s.relationships[id] = r
	return &r, nil
}

func (s *MemStorage) Close() {}

// sortByCreatedAtDesc orders newest first, breaking created-at ties by the
// monotonic id so results stay deterministic.
func sortByCreatedAtDesc[T any](items []T, key func(T) (time.Time, int)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi > idj
	})
}
