package service

import (
	"context"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type SkillService interface {
	CreateSkill(ctx context.Context, in store.CreateSkill) (*model.Skill, error)
	GetSkillByID(ctx context.Context, id string) (*model.Skill, error)
	ListAllSkills(ctx context.Context) []model.Skill
	ListSkillsByOwner(ctx context.Context, ownerID string) []model.Skill
	UpdateSkill(ctx context.Context, id string, upd store.SkillUpdate) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}

type skillService struct {
	store *store.Store
}

func NewSkillService(st *store.Store) SkillService {
	return &skillService{store: st}
}

func (s *skillService) CreateSkill(ctx context.Context, in store.CreateSkill) (*model.Skill, error) {
	return s.store.CreateSkill(in)
}

func (s *skillService) GetSkillByID(ctx context.Context, id string) (*model.Skill, error) {
	return s.store.SkillByID(id)
}

func (s *skillService) ListAllSkills(ctx context.Context) []model.Skill {
	return s.store.AllSkills()
}

func (s *skillService) ListSkillsByOwner(ctx context.Context, ownerID string) []model.Skill {
	return s.store.SkillsByOwner(ownerID)
}

func (s *skillService) UpdateSkill(ctx context.Context, id string, upd store.SkillUpdate) (*model.Skill, error) {
	return s.store.UpdateSkill(id, upd)
}

func (s *skillService) DeleteSkill(ctx context.Context, id string) error {
	return s.store.DeleteSkill(id)
}
