// Copyright 2024 irantalent
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/work"
)

// 各步骤 payload 的线格式。向导和各步骤的独立接口用同一套字段名，
// 客户端在两边看到的 JSON 是一样的。

type personalInfoPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	NationalCode string `json:"nationalCode"`
	BirthDate    string `json:"birthDate"`
	BirthPlace   string `json:"birthPlace"`
	IssuingPlace string `json:"issuingPlace"`

	Gender        string `json:"gender"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"maritalStatus"`

	FatherName      string `json:"fatherName"`
	FatherJob       string `json:"fatherJob"`
	FatherEducation string `json:"fatherEducation"`
	MotherName      string `json:"motherName"`
	MotherJob       string `json:"motherJob"`
	MotherEducation string `json:"motherEducation"`
	SiblingCount    int    `json:"siblingCount"`
	ChildrenCount   int    `json:"childrenCount"`

	Province   string `json:"province"`
	City       string `json:"city"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`

	Phone  string `json:"phone"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`

	EmergencyName     string `json:"emergencyName"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyPhone    string `json:"emergencyPhone"`

	Avatar string `json:"avatar"`
}

func (p personalInfoPayload) toDomain(uid int64) profile.Profile {
	return profile.Profile{
		Uid:               uid,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		NationalCode:      p.NationalCode,
		BirthDate:         p.BirthDate,
		BirthPlace:        p.BirthPlace,
		IssuingPlace:      p.IssuingPlace,
		Gender:            profile.Gender(p.Gender),
		Religion:          profile.Religion(p.Religion),
		MaritalStatus:     profile.MaritalStatus(p.MaritalStatus),
		FatherName:        p.FatherName,
		FatherJob:         p.FatherJob,
		FatherEducation:   p.FatherEducation,
		MotherName:        p.MotherName,
		MotherJob:         p.MotherJob,
		MotherEducation:   p.MotherEducation,
		SiblingCount:      p.SiblingCount,
		ChildrenCount:     p.ChildrenCount,
		Province:          p.Province,
		City:              p.City,
		Address:           p.Address,
		PostalCode:        p.PostalCode,
		Phone:             p.Phone,
		Mobile:            p.Mobile,
		Email:             p.Email,
		EmergencyName:     p.EmergencyName,
		EmergencyRelation: p.EmergencyRelation,
		EmergencyPhone:    p.EmergencyPhone,
		Avatar:            p.Avatar,
	}
}

func personalInfoFromDomain(p profile.Profile) personalInfoPayload {
	return personalInfoPayload{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		NationalCode:      p.NationalCode,
		BirthDate:         p.BirthDate,
		BirthPlace:        p.BirthPlace,
		IssuingPlace:      p.IssuingPlace,
		Gender:            string(p.Gender),
		Religion:          string(p.Religion),
		MaritalStatus:     string(p.MaritalStatus),
		FatherName:        p.FatherName,
		FatherJob:         p.FatherJob,
		FatherEducation:   p.FatherEducation,
		MotherName:        p.MotherName,
		MotherJob:         p.MotherJob,
		MotherEducation:   p.MotherEducation,
		SiblingCount:      p.SiblingCount,
		ChildrenCount:     p.ChildrenCount,
		Province:          p.Province,
		City:              p.City,
		Address:           p.Address,
		PostalCode:        p.PostalCode,
		Phone:             p.Phone,
		Mobile:            p.Mobile,
		Email:             p.Email,
		EmergencyName:     p.EmergencyName,
		EmergencyRelation: p.EmergencyRelation,
		EmergencyPhone:    p.EmergencyPhone,
		Avatar:            p.Avatar,
	}
}

type educationEntryPayload struct {
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

type educationPayload struct {
	Entries []educationEntryPayload `json:"entries"`
}

func (p educationPayload) toDomain() []education.Education {
	return slice.Map(p.Entries, func(idx int, src educationEntryPayload) education.Education {
		return education.Education{
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

func educationFromDomain(entries []education.Education) educationPayload {
	return educationPayload{
		Entries: slice.Map(entries, func(idx int, src education.Education) educationEntryPayload {
			return educationEntryPayload{
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
		}),
	}
}

type workEntryPayload struct {
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

type workPayload struct {
	Entries []workEntryPayload `json:"entries"`
}

func (p workPayload) toDomain() []work.Work {
	return slice.Map(p.Entries, func(idx int, src workEntryPayload) work.Work {
		return work.Work{
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

func workFromDomain(entries []work.Work) workPayload {
	return workPayload{
		Entries: slice.Map(entries, func(idx int, src work.Work) workEntryPayload {
			return workEntryPayload{
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
		}),
	}
}

type technicalSkillPayload struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type languageSkillPayload struct {
	Language      string `json:"language"`
	Reading       string `json:"reading"`
	Writing       string `json:"writing"`
	Speaking      string `json:"speaking"`
	Comprehension string `json:"comprehension"`
}

type managementSkillPayload struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type resumeFilePayload struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

type skillPayload struct {
	Technical  []technicalSkillPayload  `json:"technical"`
	Languages  []languageSkillPayload   `json:"languages"`
	Management []managementSkillPayload `json:"management"`
	Resume     *resumeFilePayload       `json:"resume"`
}

func (p skillPayload) toDomain(uid int64) skill.SkillSet {
	set := skill.SkillSet{
		Uid: uid,
		Technical: slice.Map(p.Technical, func(idx int, src technicalSkillPayload) skill.TechnicalSkill {
			return skill.TechnicalSkill{Name: src.Name, Level: src.Level}
		}),
		Languages: slice.Map(p.Languages, func(idx int, src languageSkillPayload) skill.LanguageSkill {
			return skill.LanguageSkill{
				Language:      src.Language,
				Reading:       skill.Proficiency(src.Reading),
				Writing:       skill.Proficiency(src.Writing),
				Speaking:      skill.Proficiency(src.Speaking),
				Comprehension: skill.Proficiency(src.Comprehension),
			}
		}),
		Management: slice.Map(p.Management, func(idx int, src managementSkillPayload) skill.ManagementSkill {
			return skill.ManagementSkill{Name: src.Name, Level: src.Level}
		}),
	}
	if p.Resume != nil {
		set.Resume = &skill.ResumeFile{
			Filename: p.Resume.Filename,
			Data:     p.Resume.Data,
		}
	}
	return set
}

func skillFromDomain(set skill.SkillSet) skillPayload {
	p := skillPayload{
		Technical: slice.Map(set.Technical, func(idx int, src skill.TechnicalSkill) technicalSkillPayload {
			return technicalSkillPayload{Name: src.Name, Level: src.Level}
		}),
		Languages: slice.Map(set.Languages, func(idx int, src skill.LanguageSkill) languageSkillPayload {
			return languageSkillPayload{
				Language:      src.Language,
				Reading:       string(src.Reading),
				Writing:       string(src.Writing),
				Speaking:      string(src.Speaking),
				Comprehension: string(src.Comprehension),
			}
		}),
		Management: slice.Map(set.Management, func(idx int, src skill.ManagementSkill) managementSkillPayload {
			return managementSkillPayload{Name: src.Name, Level: src.Level}
		}),
	}
	if set.Resume != nil {
		p.Resume = &resumeFilePayload{
			Filename: set.Resume.Filename,
			Data:     set.Resume.Data,
		}
	}
	return p
}
