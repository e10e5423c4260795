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
)

type EducationDAO interface {
	// ReplaceAll 先删后插，放在一个事务里，不会出现中间态
	ReplaceAll(ctx context.Context, uid int64, entries []Education) error
	FindByUid(ctx context.Context, uid int64) ([]Education, error)
}

type GORMEducationDAO struct {
	db *egorm.Component
}

func NewGORMEducationDAO(db *egorm.Component) EducationDAO {
	return &GORMEducationDAO{db: db}
}

func (d *GORMEducationDAO) ReplaceAll(ctx context.Context, uid int64, entries []Education) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("uid = ?", uid).Delete(&Education{}).Error
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].Id = 0
			entries[i].Uid = uid
			entries[i].Position = i
			entries[i].Ctime = now
			entries[i].Utime = now
		}
		return tx.Create(&entries).Error
	})
}

func (d *GORMEducationDAO) FindByUid(ctx context.Context, uid int64) ([]Education, error) {
	var res []Education
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("position ASC").
		Find(&res).Error
	return res, err
}

type Education struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"index"`
	// Position 列表里的位置，替换保存时重新编号
	Position        int
	Degree          string `gorm:"type:varchar(64)"`
	FieldOfStudy    string `gorm:"type:varchar(128)"`
	Specialization  string `gorm:"type:varchar(128)"`
	InstitutionType string `gorm:"type:varchar(64)"`
	InstitutionName string `gorm:"type:varchar(128)"`
	Grade           string `gorm:"type:varchar(32)"`
	StartDate       string `gorm:"type:varchar(32)"`
	EndDate         string `gorm:"type:varchar(32)"`
	StillStudying   bool
	Description     string `gorm:"type:text"`
	Ctime           int64
	Utime           int64
}

func (Education) TableName() string {
	return "educations"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Education{})
}
