package api

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/portfolioz/server/internal/domain"
	"github.com/portfolioz/server/internal/store"
)

// In-memory store fakes for handler tests. Each keeps documents keyed by
// ObjectID and mirrors the matched/deleted count semantics of the real
// stores. The optional err field forces every operation to fail, for the
// 500 paths.

type mockUserStore struct {
	users map[primitive.ObjectID]*domain.User
	err   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[primitive.ObjectID]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	u := *user
	u.ID = id
	m.users[id] = &u
	return id, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	users := []domain.User{}
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

type mockProjectStore struct {
	projects map[primitive.ObjectID]*domain.Project
	err      error
}

func newMockProjectStore() *mockProjectStore {
	return &mockProjectStore{projects: make(map[primitive.ObjectID]*domain.Project)}
}

func (m *mockProjectStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	projects := []domain.Project{}
	for _, p := range m.projects {
		if p.OwnerEmail == ownerEmail {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (m *mockProjectStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockProjectStore) Create(ctx context.Context, project *domain.Project) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	p := *project
	p.ID = id
	m.projects[id] = &p
	return id, nil
}

func (m *mockProjectStore) Replace(ctx context.Context, id primitive.ObjectID, project *domain.Project) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	existing, ok := m.projects[id]
	if !ok {
		return 0, nil
	}
	existing.Name = project.Name
	existing.Description = project.Description
	existing.Image = project.Image
	existing.Link = project.Link
	return 1, nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.projects[id]; !ok {
		return 0, nil
	}
	delete(m.projects, id)
	return 1, nil
}

type mockSkillStore struct {
	skills map[primitive.ObjectID]*domain.Skill
	err    error
}

func newMockSkillStore() *mockSkillStore {
	return &mockSkillStore{skills: make(map[primitive.ObjectID]*domain.Skill)}
}

func (m *mockSkillStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	skills := []domain.Skill{}
	for _, s := range m.skills {
		if s.OwnerEmail == ownerEmail {
			skills = append(skills, *s)
		}
	}
	return skills, nil
}

func (m *mockSkillStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.skills[id]
	if !ok {
		return nil, store.ErrSkillNotFound
	}
	return s, nil
}

func (m *mockSkillStore) Create(ctx context.Context, skill *domain.Skill) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	s := *skill
	s.ID = id
	m.skills[id] = &s
	return id, nil
}

func (m *mockSkillStore) Replace(ctx context.Context, id primitive.ObjectID, skill *domain.Skill) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	existing, ok := m.skills[id]
	if !ok {
		return 0, nil
	}
	existing.Name = skill.Name
	existing.Level = skill.Level
	existing.Image = skill.Image
	return 1, nil
}

func (m *mockSkillStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.skills[id]; !ok {
		return 0, nil
	}
	delete(m.skills, id)
	return 1, nil
}

type mockTestimonialStore struct {
	testimonials map[primitive.ObjectID]*domain.Testimonial
	err          error
}

func newMockTestimonialStore() *mockTestimonialStore {
	return &mockTestimonialStore{testimonials: make(map[primitive.ObjectID]*domain.Testimonial)}
}

func (m *mockTestimonialStore) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Testimonial, error) {
	if m.err != nil {
		return nil, m.err
	}
	testimonials := []domain.Testimonial{}
	for _, tm := range m.testimonials {
		if tm.OwnerEmail == ownerEmail {
			testimonials = append(testimonials, *tm)
		}
	}
	return testimonials, nil
}

func (m *mockTestimonialStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Testimonial, error) {
	if m.err != nil {
		return nil, m.err
	}
	tm, ok := m.testimonials[id]
	if !ok {
		return nil, store.ErrTestimonialNotFound
	}
	return tm, nil
}

func (m *mockTestimonialStore) Create(ctx context.Context, testimonial *domain.Testimonial) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	tm := *testimonial
	tm.ID = id
	m.testimonials[id] = &tm
	return id, nil
}

func (m *mockTestimonialStore) Replace(ctx context.Context, id primitive.ObjectID, testimonial *domain.Testimonial) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	existing, ok := m.testimonials[id]
	if !ok {
		return 0, nil
	}
	existing.PersonName = testimonial.PersonName
	existing.PersonRole = testimonial.PersonRole
	existing.PersonImage = testimonial.PersonImage
	existing.Body = testimonial.Body
	return 1, nil
}

func (m *mockTestimonialStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.testimonials[id]; !ok {
		return 0, nil
	}
	delete(m.testimonials, id)
	return 1, nil
}

type mockBlogStore struct {
	blogs map[primitive.ObjectID]*domain.BlogPost
	err   error
}

func newMockBlogStore() *mockBlogStore {
	return &mockBlogStore{blogs: make(map[primitive.ObjectID]*domain.BlogPost)}
}

func (m *mockBlogStore) List(ctx context.Context) ([]domain.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	blogs := []domain.BlogPost{}
	for _, b := range m.blogs {
		blogs = append(blogs, *b)
	}
	return blogs, nil
}

func (m *mockBlogStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.blogs[id]
	if !ok {
		return nil, store.ErrBlogNotFound
	}
	return b, nil
}

func (m *mockBlogStore) Create(ctx context.Context, post *domain.BlogPost) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	b := *post
	b.ID = id
	m.blogs[id] = &b
	return id, nil
}

func (m *mockBlogStore) Replace(ctx context.Context, id primitive.ObjectID, post *domain.BlogPost) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	existing, ok := m.blogs[id]
	if !ok {
		return 0, nil
	}
	existing.Title = post.Title
	existing.Author = post.Author
	existing.Image = post.Image
	existing.Content = post.Content
	return 1, nil
}

func (m *mockBlogStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.blogs[id]; !ok {
		return 0, nil
	}
	delete(m.blogs, id)
	return 1, nil
}

type mockPortfolioStore struct {
	byEmail map[string]*domain.Portfolio
	err     error
}

func newMockPortfolioStore() *mockPortfolioStore {
	return &mockPortfolioStore{byEmail: make(map[string]*domain.Portfolio)}
}

func (m *mockPortfolioStore) GetByEmail(ctx context.Context, email string) (*domain.Portfolio, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byEmail[email]
	if !ok {
		return nil, store.ErrPortfolioNotFound
	}
	return p, nil
}

func (m *mockPortfolioStore) Create(ctx context.Context, portfolio *domain.Portfolio) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[portfolio.Email]; ok {
		return store.ErrPortfolioExists
	}
	m.byEmail[portfolio.Email] = portfolio
	return nil
}
