// Copyright 2023 ecodeclub
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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// localSessionID 整个进程只有一个会话，固定一行
const localSessionID = 1

var ErrSessionNotFound = errors.New("本地没有保存会话")

// LocalSession 本地持久化的会话，四个字段一次写入
type LocalSession struct {
	ID     int64  `gorm:"primaryKey;column:id"`
	UserID string `gorm:"column:user_id;type:varchar(64)"`
	Name   string `gorm:"type:varchar(256)"`
	Email  string `gorm:"type:varchar(256)"`
	Role   string `gorm:"type:varchar(32)"`
	Token  string `gorm:"type:text"`
	Utime  int64
}

type SessionDAO interface {
	Get(ctx context.Context) (LocalSession, error)
	// Save 整行覆盖
	Save(ctx context.Context, s LocalSession) error
	Delete(ctx context.Context) error
}

type GORMSessionDAO struct {
	db *egorm.Component
}

func NewGORMSessionDAO(db *egorm.Component) SessionDAO {
	return &GORMSessionDAO{db: db}
}

func (d *GORMSessionDAO) Get(ctx context.Context) (LocalSession, error) {
	var s LocalSession
	err := d.db.WithContext(ctx).Where("id = ?", localSessionID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LocalSession{}, ErrSessionNotFound
	}
	return s, err
}

func (d *GORMSessionDAO) Save(ctx context.Context, s LocalSession) error {
	s.ID = localSessionID
	s.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&s).Error
}

func (d *GORMSessionDAO) Delete(ctx context.Context) error {
	return d.db.WithContext(ctx).Where("id = ?", localSessionID).Delete(&LocalSession{}).Error
}
