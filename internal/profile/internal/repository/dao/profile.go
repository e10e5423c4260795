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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProfileDAO interface {
	// Upsert 按 uid 冲突更新，保证一个用户只有一行
	Upsert(ctx context.Context, p Profile) (int64, error)
	FindByUid(ctx context.Context, uid int64) (Profile, error)
	FindByUids(ctx context.Context, uids []int64) ([]Profile, error)
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (d *GORMProfileDAO) Upsert(ctx context.Context, p Profile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "national_code",
				"birth_date", "birth_place", "issuing_place",
				"gender", "religion", "marital_status",
				"father_name", "father_job", "father_education",
				"mother_name", "mother_job", "mother_education",
				"sibling_count", "children_count",
				"province", "city", "address", "postal_code",
				"phone", "mobile", "email",
				"emergency_name", "emergency_relation", "emergency_phone",
				"avatar", "utime",
			}),
		}).Create(&p).Error
	if err != nil {
		return 0, err
	}
	// 冲突走更新路径时 Create 回填不了已有行的主键，按 uid 再查一次
	var existing Profile
	err = d.db.WithContext(ctx).Select("id").First(&existing, "uid = ?", p.Uid).Error
	return existing.Id, err
}

func (d *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (Profile, error) {
	var p Profile
	err := d.db.WithContext(ctx).First(&p, "uid = ?", uid).Error
	return p, err
}

func (d *GORMProfileDAO) FindByUids(ctx context.Context, uids []int64) ([]Profile, error) {
	var ps []Profile
	err := d.db.WithContext(ctx).Find(&ps, "uid IN ?", uids).Error
	return ps, err
}

type Profile struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex"`

	FirstName    string `gorm:"type:varchar(128)"`
	LastName     string `gorm:"type:varchar(128)"`
	NationalCode string `gorm:"type:varchar(16)"`
	BirthDate    string `gorm:"type:varchar(32)"`
	BirthPlace   string `gorm:"type:varchar(128)"`
	IssuingPlace string `gorm:"type:varchar(128)"`

	Gender        string `gorm:"type:varchar(16)"`
	Religion      string `gorm:"type:varchar(32)"`
	MaritalStatus string `gorm:"type:varchar(16)"`

	FatherName      string `gorm:"type:varchar(128)"`
	FatherJob       string `gorm:"type:varchar(128)"`
	FatherEducation string `gorm:"type:varchar(128)"`
	MotherName      string `gorm:"type:varchar(128)"`
	MotherJob       string `gorm:"type:varchar(128)"`
	MotherEducation string `gorm:"type:varchar(128)"`
	SiblingCount    int
	ChildrenCount   int

	Province   string `gorm:"type:varchar(128)"`
	City       string `gorm:"type:varchar(128)"`
	Address    string `gorm:"type:text"`
	PostalCode string `gorm:"type:varchar(16)"`

	Phone  string `gorm:"type:varchar(16)"`
	Mobile string `gorm:"type:varchar(16)"`
	Email  string `gorm:"type:varchar(256)"`

	EmergencyName     string `gorm:"type:varchar(128)"`
	EmergencyRelation string `gorm:"type:varchar(64)"`
	EmergencyPhone    string `gorm:"type:varchar(16)"`

	// 头像 data URL，可能很大
	Avatar string `gorm:"type:longtext"`

	Ctime int64
	Utime int64
}

func (Profile) TableName() string {
	return "personal_infos"
}
