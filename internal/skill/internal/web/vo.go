package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/irantalent/estekhdam/internal/skill/internal/domain"
)

type TechnicalSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type LanguageSkill struct {
	Language      string `json:"language"`
	Reading       string `json:"reading"`
	Writing       string `json:"writing"`
	Speaking      string `json:"speaking"`
	Comprehension string `json:"comprehension"`
}

type ManagementSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ResumeFile struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

type SaveAllReq struct {
	Technical  []TechnicalSkill  `json:"technical"`
	Languages  []LanguageSkill   `json:"languages"`
	Management []ManagementSkill `json:"management"`
	Resume     *ResumeFile       `json:"resume"`
}

type SkillSetVO struct {
	Technical  []TechnicalSkill  `json:"technical"`
	Languages  []LanguageSkill   `json:"languages"`
	Management []ManagementSkill `json:"management"`
	Resume     *ResumeFile       `json:"resume,omitempty"`
}

func (req SaveAllReq) toDomain(uid int64) domain.SkillSet {
	set := domain.SkillSet{
		Uid: uid,
		Technical: slice.Map(req.Technical, func(idx int, src TechnicalSkill) domain.TechnicalSkill {
			return domain.TechnicalSkill{Name: src.Name, Level: src.Level}
		}),
		Languages: slice.Map(req.Languages, func(idx int, src LanguageSkill) domain.LanguageSkill {
			return domain.LanguageSkill{
				Language:      src.Language,
				Reading:       domain.Proficiency(src.Reading),
				Writing:       domain.Proficiency(src.Writing),
				Speaking:      domain.Proficiency(src.Speaking),
				Comprehension: domain.Proficiency(src.Comprehension),
			}
		}),
		Management: slice.Map(req.Management, func(idx int, src ManagementSkill) domain.ManagementSkill {
			return domain.ManagementSkill{Name: src.Name, Level: src.Level}
		}),
	}
	if req.Resume != nil {
		set.Resume = &domain.ResumeFile{
			Filename: req.Resume.Filename,
			Data:     req.Resume.Data,
		}
	}
	return set
}

func newSkillSetVO(set domain.SkillSet) SkillSetVO {
	vo := SkillSetVO{
		Technical: slice.Map(set.Technical, func(idx int, src domain.TechnicalSkill) TechnicalSkill {
			return TechnicalSkill{Name: src.Name, Level: src.Level}
		}),
		Languages: slice.Map(set.Languages, func(idx int, src domain.LanguageSkill) LanguageSkill {
			return LanguageSkill{
				Language:      src.Language,
				Reading:       string(src.Reading),
				Writing:       string(src.Writing),
				Speaking:      string(src.Speaking),
				Comprehension: string(src.Comprehension),
			}
		}),
		Management: slice.Map(set.Management, func(idx int, src domain.ManagementSkill) ManagementSkill {
			return ManagementSkill{Name: src.Name, Level: src.Level}
		}),
	}
	if set.Resume != nil {
		vo.Resume = &ResumeFile{
			Filename: set.Resume.Filename,
			Data:     set.Resume.Data,
		}
	}
	return vo
}
