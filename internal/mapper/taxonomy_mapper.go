package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"
)

type TaxonomyMapper struct{}

func NewTaxonomyMapper() *TaxonomyMapper {
	return &TaxonomyMapper{}
}

func (m *TaxonomyMapper) SectorToEntity(s *model.Sector) *entity.Sector {
	if s == nil {
		return nil
	}
	return &entity.Sector{
		Id:        s.Id,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SectorToModel(s *entity.Sector) *model.Sector {
	if s == nil {
		return nil
	}
	return &model.Sector{
		Id:        s.Id,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SectorsToEntities(sectors []*model.Sector) []*entity.Sector {
	entities := make([]*entity.Sector, len(sectors))
	for i, s := range sectors {
		entities[i] = m.SectorToEntity(s)
	}
	return entities
}

func (m *TaxonomyMapper) SubsectorToEntity(s *model.Subsector) *entity.Subsector {
	if s == nil {
		return nil
	}
	return &entity.Subsector{
		Id:        s.Id,
		SectorId:  s.SectorId,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SubsectorToModel(s *entity.Subsector) *model.Subsector {
	if s == nil {
		return nil
	}
	return &model.Subsector{
		Id:        s.Id,
		SectorId:  s.SectorId,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SubsectorsToEntities(subsectors []*model.Subsector) []*entity.Subsector {
	entities := make([]*entity.Subsector, len(subsectors))
	for i, s := range subsectors {
		entities[i] = m.SubsectorToEntity(s)
	}
	return entities
}

func (m *TaxonomyMapper) DisciplineToEntity(d *model.Discipline) *entity.Discipline {
	if d == nil {
		return nil
	}
	return &entity.Discipline{
		Id:        d.Id,
		Name:      d.Name,
		Category:  d.Category,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func (m *TaxonomyMapper) DisciplineToModel(d *entity.Discipline) *model.Discipline {
	if d == nil {
		return nil
	}
	return &model.Discipline{
		Id:        d.Id,
		Name:      d.Name,
		Category:  d.Category,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func (m *TaxonomyMapper) DisciplinesToEntities(disciplines []*model.Discipline) []*entity.Discipline {
	entities := make([]*entity.Discipline, len(disciplines))
	for i, d := range disciplines {
		entities[i] = m.DisciplineToEntity(d)
	}
	return entities
}

func (m *TaxonomyMapper) SubtypeToEntity(s *model.DisciplineSubtype) *entity.DisciplineSubtype {
	if s == nil {
		return nil
	}
	return &entity.DisciplineSubtype{
		Id:           s.Id,
		DisciplineId: s.DisciplineId,
		Name:         s.Name,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SubtypeToModel(s *entity.DisciplineSubtype) *model.DisciplineSubtype {
	if s == nil {
		return nil
	}
	return &model.DisciplineSubtype{
		Id:           s.Id,
		DisciplineId: s.DisciplineId,
		Name:         s.Name,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *TaxonomyMapper) SubtypesToEntities(subtypes []*model.DisciplineSubtype) []*entity.DisciplineSubtype {
	entities := make([]*entity.DisciplineSubtype, len(subtypes))
	for i, s := range subtypes {
		entities[i] = m.SubtypeToEntity(s)
	}
	return entities
}
