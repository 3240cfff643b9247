package repository

import (
	"context"
	"time"

	"wooders/internal/domain"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

type testimonialModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Feedback  string    `gorm:"column:feedback"`
	Rating    int       `gorm:"column:rating"`
	Photo     *string   `gorm:"column:photo"`
	Status    string    `gorm:"column:status;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testimonialModel) TableName() string { return "testimonials" }

func toDomainTestimonial(m testimonialModel) *domain.Testimonial {
	var photo string
	if m.Photo != nil {
		photo = *m.Photo
	}
	return &domain.Testimonial{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Feedback:  m.Feedback,
		Rating:    m.Rating,
		Photo:     photo,
		Status:    domain.TestimonialStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTestimonialModel(t *domain.Testimonial) testimonialModel {
	var photo *string
	if t.Photo != "" {
		v := t.Photo
		photo = &v
	}
	return testimonialModel{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Feedback:  t.Feedback,
		Rating:    t.Rating,
		Photo:     photo,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	m := toTestimonialModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTestimonial(m)
	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	var m testimonialModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTestimonial(m), nil
}

// List returns testimonials newest first, optionally filtered by status.
// An empty status means no filter.
func (r *TestimonialRepository) List(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&testimonialModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var models []testimonialModel
	tx := q.Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Testimonial, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainTestimonial(m))
	}
	return out, nil
}

// Update applies the given column changes and returns the updated row.
func (r *TestimonialRepository) Update(ctx context.Context, id int64, changes map[string]any) (*domain.Testimonial, error) {
	changes["updated_at"] = time.Now()
	tx := r.db.WithContext(ctx).
		Model(&testimonialModel{}).
		Where("id = ?", id).
		Updates(changes)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&testimonialModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
