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
	"errors"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrApplicationExists uid 撞了唯一索引，一个人只能有一份申请
	ErrApplicationExists = errors.New("该用户已经提交过申请")
)

type ApplicationDAO interface {
	Insert(ctx context.Context, app Application) (int64, error)
	FindByUid(ctx context.Context, uid int64) (Application, error)
	FindById(ctx context.Context, id int64) (Application, error)
	UpdateDecision(ctx context.Context, id int64, status, message string, decidedAt int64) error
	// List status 为空不过滤状态，lastName 为空不按姓氏搜
	List(ctx context.Context, offset, limit int, status, lastName string) ([]Application, error)
	Count(ctx context.Context, status, lastName string) (int64, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := d.db.WithContext(ctx).Create(&app).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrApplicationExists
		}
	}
	return app.Id, err
}

func (d *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).First(&app, "uid = ?", uid).Error
	return app, err
}

func (d *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).First(&app, "id = ?", id).Error
	return app, err
}

func (d *GORMApplicationDAO) UpdateDecision(ctx context.Context, id int64, status, message string, decidedAt int64) error {
	return d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"message":    message,
			"decided_at": decidedAt,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (d *GORMApplicationDAO) List(ctx context.Context, offset, limit int, status, lastName string) ([]Application, error) {
	var apps []Application
	err := d.listQuery(ctx, status, lastName).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) Count(ctx context.Context, status, lastName string) (int64, error) {
	var count int64
	err := d.listQuery(ctx, status, lastName).Count(&count).Error
	return count, err
}

func (d *GORMApplicationDAO) listQuery(ctx context.Context, status, lastName string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if lastName != "" {
		query = query.Where("LOWER(last_name) LIKE ?", "%"+strings.ToLower(lastName)+"%")
	}
	return query
}

type Application struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Uid int64  `gorm:"uniqueIndex"`
	SN  string `gorm:"type:varchar(256)"`

	// Status pending | approved | rejected
	Status  string `gorm:"type:varchar(16);index;not null;default:'pending'"`
	Message string `gorm:"type:varchar(2048)"`

	// 提交时的姓名快照，管理端列表展示和搜索用
	FirstName string                           `gorm:"type:varchar(256)"`
	LastName  string                           `gorm:"type:varchar(256)"`
	Snapshot  sqlx.JsonColumn[domain.Snapshot] `gorm:"type:longtext"`

	// DecidedAt 审核时间，没审核过是 0
	DecidedAt int64
	Ctime     int64
	Utime     int64
}

func (Application) TableName() string {
	return "applications"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Application{})
}
