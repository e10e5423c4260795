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
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 用户名或者密码不对
var ErrInvalidCredentials = errors.New("管理员用户名或密码错误")

type AdminService interface {
	// Login 校验配置里的管理员账号，成功返回固定的管理员 uid
	Login(ctx context.Context, username, password string) (int64, error)
}

// 管理员不走 users 表，账号密码在配置文件里
type adminService struct {
	username string
	// bcrypt 之后的密码
	passwordHash string
}

func NewAdminService(username, passwordHash string) AdminService {
	return &adminService{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (int64, error) {
	if username != s.username {
		return 0, ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	// 管理员只有一个，uid 固定
	return adminUid, nil
}

const adminUid = int64(1)
