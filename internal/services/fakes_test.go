package services

import (
	"context"
	"sort"

	"tutorlift_backend/internal/clients"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/repositories"
)

// In-memory fakes for the repository and client interfaces. They record
// enough to assert on call order and persisted state.

type fakeProfileRepo struct {
	students map[string]*models.Student
	tutors   map[string]*models.Tutor

	saveCalls    int
	savedStudent *models.Student
	savedTutor   *models.Tutor

	searchResult []models.Tutor
	lastPlan     repositories.TutorSearchPlan
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		students: map[string]*models.Student{},
		tutors:   map[string]*models.Tutor{},
	}
}

func (f *fakeProfileRepo) FindStudentByID(_ context.Context, id string) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindTutorByID(_ context.Context, id string) (*models.Tutor, error) {
	if t, ok := f.tutors[id]; ok {
		return t, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) CreateStudent(_ context.Context, _ *models.User, student *models.Student) error {
	if _, ok := f.students[student.ID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeProfileRepo) CreateTutor(_ context.Context, tutor *models.Tutor, student *models.Student) error {
	if _, ok := f.tutors[tutor.ID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	f.tutors[tutor.ID] = tutor
	f.students[student.ID] = student
	return nil
}

func (f *fakeProfileRepo) SaveProfiles(_ context.Context, student *models.Student, tutor *models.Tutor) error {
	f.saveCalls++
	f.savedStudent = student
	f.savedTutor = tutor
	if student != nil {
		f.students[student.ID] = student
	}
	if tutor != nil {
		f.tutors[tutor.ID] = tutor
	}
	return nil
}

func (f *fakeProfileRepo) SearchTutors(_ context.Context, plan repositories.TutorSearchPlan) ([]models.Tutor, error) {
	f.lastPlan = plan
	if plan.ID != "" && len(f.searchResult) == 0 {
		return nil, repositories.ErrProfileNotFound
	}
	return f.searchResult, nil
}

type fakeCourseRepo struct {
	known map[string]models.Course
}

func newFakeCourseRepo(names ...string) *fakeCourseRepo {
	known := map[string]models.Course{}
	for _, name := range names {
		known[name] = models.Course{Name: name, Subject: "Test"}
	}
	return &fakeCourseRepo{known: known}
}

func (f *fakeCourseRepo) FindByName(_ context.Context, name string) (*models.Course, error) {
	if c, ok := f.known[name]; ok {
		return &c, nil
	}
	return nil, repositories.ErrCourseNotFound
}

func (f *fakeCourseRepo) List(_ context.Context, offset, limit int) ([]models.Course, int, error) {
	names := make([]string, 0, len(f.known))
	for name := range f.known {
		names = append(names, name)
	}
	sort.Strings(names)

	var page []models.Course
	for i := offset; i < len(names) && len(page) < limit; i++ {
		page = append(page, f.known[names[i]])
	}
	return page, offset + len(page), nil
}

type fakeIdentity struct {
	account   *clients.IdentityUser
	updates   []clients.IdentityUpdate
	updateErr error
}

func (f *fakeIdentity) GetUser(_ context.Context, uid string) (*clients.IdentityUser, error) {
	if f.account != nil {
		return f.account, nil
	}
	return &clients.IdentityUser{UID: uid, EmailVerified: true}, nil
}

func (f *fakeIdentity) UpdateUser(_ context.Context, _ string, update clients.IdentityUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, update)
	return nil
}

type fakeGeocoder struct {
	location *clients.Location
	err      error
	calls    []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, postalCode string) (*clients.Location, error) {
	f.calls = append(f.calls, postalCode)
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

type fakePayments struct {
	customerID string
	card       *clients.Card
	cardErr    error

	deletedCards []string
}

func (f *fakePayments) CreateCustomer(_ context.Context, _, _ string) (string, error) {
	if f.customerID == "" {
		return "cus_test", nil
	}
	return f.customerID, nil
}

func (f *fakePayments) GetCard(_ context.Context, _, cardID string) (*clients.Card, error) {
	if f.cardErr != nil {
		return nil, f.cardErr
	}
	if f.card != nil {
		return f.card, nil
	}
	return &clients.Card{ID: cardID, Brand: "Visa", Last4: "4242"}, nil
}

func (f *fakePayments) CreateCard(_ context.Context, _, token string) (*clients.Card, error) {
	if f.cardErr != nil {
		return nil, f.cardErr
	}
	if f.card != nil {
		return f.card, nil
	}
	return &clients.Card{ID: "card_" + token, Brand: "Visa", Last4: "4242"}, nil
}

func (f *fakePayments) DeleteCard(_ context.Context, _, cardID string) error {
	f.deletedCards = append(f.deletedCards, cardID)
	return nil
}
