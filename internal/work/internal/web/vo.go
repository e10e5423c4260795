package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/irantalent/estekhdam/internal/work/internal/domain"
)

type Work struct {
	Company           string `json:"company"`
	Position          string `json:"position"`
	Field             string `json:"field"`
	OrgLevel          string `json:"orgLevel"`
	CooperationType   string `json:"cooperationType"`
	InsuranceMonths   int    `json:"insuranceMonths"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	StillWorking      bool   `json:"stillWorking"`
	WorkPhone         string `json:"workPhone"`
	LastSalary        int64  `json:"lastSalary"`
	TerminationReason string `json:"terminationReason"`
	Description       string `json:"description"`
}

type SaveReq struct {
	Entries []Work `json:"entries"`
}

type DeleteReq struct {
	Index int `json:"index"`
}

type ListResp struct {
	Entries []Work `json:"entries"`
}

func toDomain(entries []Work) []domain.Work {
	return slice.Map(entries, func(idx int, src Work) domain.Work {
		return domain.Work{
			Company:           src.Company,
			Position:          src.Position,
			Field:             src.Field,
			OrgLevel:          src.OrgLevel,
			CooperationType:   src.CooperationType,
			InsuranceMonths:   src.InsuranceMonths,
			StartDate:         src.StartDate,
			EndDate:           src.EndDate,
			StillWorking:      src.StillWorking,
			WorkPhone:         src.WorkPhone,
			LastSalary:        src.LastSalary,
			TerminationReason: src.TerminationReason,
			Description:       src.Description,
		}
	})
}

func toVO(entries []domain.Work) []Work {
	return slice.Map(entries, func(idx int, src domain.Work) Work {
		return Work{
			Company:           src.Company,
			Position:          src.Position,
			Field:             src.Field,
			OrgLevel:          src.OrgLevel,
			CooperationType:   src.CooperationType,
			InsuranceMonths:   src.InsuranceMonths,
			StartDate:         src.StartDate,
			EndDate:           src.EndDate,
			StillWorking:      src.StillWorking,
			WorkPhone:         src.WorkPhone,
			LastSalary:        src.LastSalary,
			TerminationReason: src.TerminationReason,
			Description:       src.Description,
		}
	})
}
