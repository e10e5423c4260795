package web

import (
	"github.com/irantalent/estekhdam/internal/profile/internal/domain"
)

type SaveProfileReq struct {
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

func (req SaveProfileReq) toDomain(uid int64) domain.Profile {
	return domain.Profile{
		Uid:               uid,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		NationalCode:      req.NationalCode,
		BirthDate:         req.BirthDate,
		BirthPlace:        req.BirthPlace,
		IssuingPlace:      req.IssuingPlace,
		Gender:            domain.Gender(req.Gender),
		Religion:          domain.Religion(req.Religion),
		MaritalStatus:     domain.MaritalStatus(req.MaritalStatus),
		FatherName:        req.FatherName,
		FatherJob:         req.FatherJob,
		FatherEducation:   req.FatherEducation,
		MotherName:        req.MotherName,
		MotherJob:         req.MotherJob,
		MotherEducation:   req.MotherEducation,
		SiblingCount:      req.SiblingCount,
		ChildrenCount:     req.ChildrenCount,
		Province:          req.Province,
		City:              req.City,
		Address:           req.Address,
		PostalCode:        req.PostalCode,
		Phone:             req.Phone,
		Mobile:            req.Mobile,
		Email:             req.Email,
		EmergencyName:     req.EmergencyName,
		EmergencyRelation: req.EmergencyRelation,
		EmergencyPhone:    req.EmergencyPhone,
		Avatar:            req.Avatar,
	}
}

type ProfileVO struct {
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

func newProfileVO(p domain.Profile) ProfileVO {
	return ProfileVO{
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
