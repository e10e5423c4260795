package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/irantalent/estekhdam/internal/education/internal/domain"
)

type Education struct {
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	Specialization  string `json:"specialization"`
	InstitutionType string `json:"institutionType"`
	InstitutionName string `json:"institutionName"`
	Grade           string `json:"grade"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	StillStudying   bool   `json:"stillStudying"`
	Description     string `json:"description"`
}

type SaveReq struct {
	Entries []Education `json:"entries"`
}

type DeleteReq struct {
	Index int `json:"index"`
}

type ListResp struct {
	Entries []Education `json:"entries"`
}

func toDomain(entries []Education) []domain.Education {
	return slice.Map(entries, func(idx int, src Education) domain.Education {
		return domain.Education{
			Degree:          src.Degree,
			FieldOfStudy:    src.FieldOfStudy,
			Specialization:  src.Specialization,
			InstitutionType: src.InstitutionType,
			InstitutionName: src.InstitutionName,
			Grade:           src.Grade,
			StartDate:       src.StartDate,
			EndDate:         src.EndDate,
			StillStudying:   src.StillStudying,
			Description:     src.Description,
		}
	})
}

func toVO(entries []domain.Education) []Education {
	return slice.Map(entries, func(idx int, src domain.Education) Education {
		return Education{
			Degree:          src.Degree,
			FieldOfStudy:    src.FieldOfStudy,
			Specialization:  src.Specialization,
			InstitutionType: src.InstitutionType,
			InstitutionName: src.InstitutionName,
			Grade:           src.Grade,
			StartDate:       src.StartDate,
			EndDate:         src.EndDate,
			StillStudying:   src.StillStudying,
			Description:     src.Description,
		}
	})
}
