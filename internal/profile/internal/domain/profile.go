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

package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

func (m MaritalStatus) Valid() bool {
	return m == MaritalSingle || m == MaritalMarried
}

type Religion string

const (
	ReligionIslam          Religion = "islam"
	ReligionChristianity   Religion = "christianity"
	ReligionJudaism        Religion = "judaism"
	ReligionZoroastrianism Religion = "zoroastrianism"
	ReligionOther          Religion = "other"
)

func (r Religion) Valid() bool {
	switch r {
	case ReligionIslam, ReligionChristianity, ReligionJudaism,
		ReligionZoroastrianism, ReligionOther:
		return true
	default:
		return false
	}
}

// Profile 每个用户最多一行，按 uid upsert
type Profile struct {
	Id  int64
	Uid int64

	FirstName    string
	LastName     string
	NationalCode string
	// BirthDate 按用户输入原样存储，不做任何历法转换
	BirthDate    string
	BirthPlace   string
	IssuingPlace string

	Gender        Gender
	Religion      Religion
	MaritalStatus MaritalStatus

	FatherName      string
	FatherJob       string
	FatherEducation string
	MotherName      string
	MotherJob       string
	MotherEducation string
	SiblingCount    int
	ChildrenCount   int

	Province   string
	City       string
	Address    string
	PostalCode string

	Phone  string
	Mobile string
	Email  string

	EmergencyName     string
	EmergencyRelation string
	EmergencyPhone    string

	// Avatar data URL
	Avatar string

	Utime int64
}
