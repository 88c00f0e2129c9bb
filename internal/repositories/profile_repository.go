package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tutorlift_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

// TutorFilter is one ANDed equality predicate of a tutor search.
type TutorFilter struct {
	Column string
	Value  any
}

// TutorSearchPlan is a fully validated tutor query, ready to execute.
// Services build plans; the repository only translates them to SQL.
type TutorSearchPlan struct {
	// ID switches the plan to a point lookup. All other predicate
	// fields are ignored when it is set.
	ID string

	Columns        []string
	Filters        []TutorFilter
	Courses        []string
	OnlySearchable bool
	Offset         int
	Limit          int
}

type ProfileRepository interface {
	FindStudentByID(ctx context.Context, id string) (*models.Student, error)
	FindTutorByID(ctx context.Context, id string) (*models.Tutor, error)

	// CreateStudent inserts the user anchor row and the student profile
	// in one transaction.
	CreateStudent(ctx context.Context, user *models.User, student *models.Student) error

	// CreateTutor inserts the tutor profile and rewrites the student row
	// (user type flip, mirrored fields) in one transaction.
	CreateTutor(ctx context.Context, tutor *models.Tutor, student *models.Student) error

	// SaveProfiles writes both profile rows atomically. Either argument
	// may be nil when that side has no changes.
	SaveProfiles(ctx context.Context, student *models.Student, tutor *models.Tutor) error

	// SearchTutors executes a plan. A point lookup that finds nothing
	// returns ErrProfileNotFound; an empty collection page is not an
	// error.
	SearchTutors(ctx context.Context, plan TutorSearchPlan) ([]models.Tutor, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find student %s: %w", id, err)
	}
	return &student, nil
}

func (r *ProfileRepositoryImpl) FindTutorByID(ctx context.Context, id string) (*models.Tutor, error) {
	var tutor models.Tutor
	err := r.db.WithContext(ctx).First(&tutor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find tutor %s: %w", id, err)
	}
	return &tutor, nil
}

func (r *ProfileRepositoryImpl) CreateStudent(ctx context.Context, user *models.User, student *models.Student) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(student).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("create student %s: %w", student.ID, err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) CreateTutor(ctx context.Context, tutor *models.Tutor, student *models.Student) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tutor).Error; err != nil {
			return err
		}
		return tx.Save(student).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("create tutor %s: %w", tutor.ID, err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) SaveProfiles(ctx context.Context, student *models.Student, tutor *models.Tutor) error {
	if student == nil && tutor == nil {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if student != nil {
			if err := tx.Save(student).Error; err != nil {
				return err
			}
		}
		if tutor != nil {
			if err := tx.Save(tutor).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) SearchTutors(ctx context.Context, plan TutorSearchPlan) ([]models.Tutor, error) {
	query := r.db.WithContext(ctx).Model(&models.Tutor{})
	if len(plan.Columns) > 0 {
		query = query.Select(plan.Columns)
	}

	if plan.ID != "" {
		var tutor models.Tutor
		err := query.First(&tutor, "id = ?", plan.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, fmt.Errorf("search tutor %s: %w", plan.ID, err)
		}
		return []models.Tutor{tutor}, nil
	}

	if plan.OnlySearchable {
		query = query.Where("is_searchable = ?", true)
	}
	for _, filter := range plan.Filters {
		query = query.Where(filter.Column+" = ?", filter.Value)
	}
	if len(plan.Courses) > 0 {
		query = query.Where("courses @> ?", pq.Array(plan.Courses))
	}

	query = query.Order("rating DESC NULLS LAST").Offset(plan.Offset)
	if plan.Limit > 0 {
		query = query.Limit(plan.Limit)
	}

	var tutors []models.Tutor
	if err := query.Find(&tutors).Error; err != nil {
		return nil, fmt.Errorf("search tutors: %w", err)
	}
	return tutors, nil
}

// isDuplicateKey matches postgres unique violations (SQLSTATE 23505).
// The gorm postgres driver speaks pgx, so violations arrive as
// *pgconn.PgError rather than lib/pq errors.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
