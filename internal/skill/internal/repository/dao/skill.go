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

// 行类型用显式的 kind 区分，不靠哪些列非空来猜
const (
	KindTechnical  = "technical"
	KindLanguage   = "language"
	KindManagement = "management"
	KindResume     = "resume"
)

type SkillDAO interface {
	// ReplaceAll 一个事务里把这个用户的所有技能行删掉重插
	ReplaceAll(ctx context.Context, uid int64, rows []Skill) error
	FindByUid(ctx context.Context, uid int64) ([]Skill, error)
}

type GORMSkillDAO struct {
	db *egorm.Component
}

func NewGORMSkillDAO(db *egorm.Component) SkillDAO {
	return &GORMSkillDAO{db: db}
}

func (d *GORMSkillDAO) ReplaceAll(ctx context.Context, uid int64, rows []Skill) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("uid = ?", uid).Delete(&Skill{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].Id = 0
			rows[i].Uid = uid
			rows[i].Position = i
			rows[i].Ctime = now
			rows[i].Utime = now
		}
		return tx.Create(&rows).Error
	})
}

func (d *GORMSkillDAO) FindByUid(ctx context.Context, uid int64) ([]Skill, error) {
	var rows []Skill
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("position ASC").
		Find(&rows).Error
	return rows, err
}

type Skill struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"index"`
	// Kind 行类型：technical、language、management、resume
	Kind     string `gorm:"type:varchar(16);not null"`
	Position int

	// technical 和 management 共用
	Name  string `gorm:"type:varchar(128)"`
	Level int

	// language 专用
	Language      string `gorm:"type:varchar(64)"`
	Reading       string `gorm:"type:varchar(16)"`
	Writing       string `gorm:"type:varchar(16)"`
	Speaking      string `gorm:"type:varchar(16)"`
	Comprehension string `gorm:"type:varchar(16)"`

	// resume 专用
	ResumeName   string `gorm:"type:varchar(256)"`
	ResumeBase64 string `gorm:"type:longtext"`

	Ctime int64
	Utime int64
}

func (Skill) TableName() string {
	return "skills"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Skill{})
}
