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
	"testing"

	"github.com/ecodeclub/jobboard/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMSessionDAO(t *testing.T) {
	db := test.NewSQLiteDB()
	require.NoError(t, InitTables(db))
	d := NewGORMSessionDAO(db)
	ctx := context.Background()

	_, err := d.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, d.Save(ctx, LocalSession{UserID: "u1", Role: "jobseeker", Token: "t1"}))
	require.NoError(t, d.Save(ctx, LocalSession{UserID: "u2", Role: "employer", Token: "t2", Name: "Bob"}))

	// 始终只有一行
	var cnt int64
	require.NoError(t, db.Model(&LocalSession{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	got, err := d.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, "employer", got.Role)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, "Bob", got.Name)
	assert.True(t, got.Utime > 0)

	require.NoError(t, d.Delete(ctx))
	// 重复删除不报错
	require.NoError(t, d.Delete(ctx))
	_, err = d.Get(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
