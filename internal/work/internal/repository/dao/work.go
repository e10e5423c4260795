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

type WorkDAO interface {
	// ReplaceAll 同一个事务里先删后插
	ReplaceAll(ctx context.Context, uid int64, entries []Work) error
	FindByUid(ctx context.Context, uid int64) ([]Work, error)
}

type GORMWorkDAO struct {
	db *egorm.Component
}

func NewGORMWorkDAO(db *egorm.Component) WorkDAO {
	return &GORMWorkDAO{db: db}
}

func (d *GORMWorkDAO) ReplaceAll(ctx context.Context, uid int64, entries []Work) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("uid = ?", uid).Delete(&Work{}).Error
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

func (d *GORMWorkDAO) FindByUid(ctx context.Context, uid int64) ([]Work, error) {
	var res []Work
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("position ASC").
		Find(&res).Error
	return res, err
}

type Work struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"index"`
	// Position 列表里的位置
	Position          int
	Company           string `gorm:"type:varchar(128)"`
	JobTitle          string `gorm:"type:varchar(128)"`
	Field             string `gorm:"type:varchar(128)"`
	OrgLevel          string `gorm:"type:varchar(64)"`
	CooperationType   string `gorm:"type:varchar(64)"`
	InsuranceMonths   int
	StartDate         string `gorm:"type:varchar(32)"`
	EndDate           string `gorm:"type:varchar(32)"`
	StillWorking      bool
	WorkPhone         string `gorm:"type:varchar(16)"`
	LastSalary        int64
	TerminationReason string `gorm:"type:varchar(256)"`
	Description       string `gorm:"type:text"`
	Ctime             int64
	Utime             int64
}

func (Work) TableName() string {
	return "work_infos"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Work{})
}
