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

package web

type SubmitResp struct {
	SN string `json:"sn"`
}

type SummaryVO struct {
	Submitted bool   `json:"submitted"`
	SN        string `json:"sn"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
	DecidedAt int64  `json:"decidedAt"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// Status all | pending | approved | rejected，空等于 all
	Status string `json:"status"`
	// Keyword 按姓氏模糊搜索，大小写不敏感
	Keyword string `json:"keyword"`
}

type ApplicationVO struct {
	Id        int64  `json:"id"`
	SN        string `json:"sn"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
	DecidedAt int64  `json:"decidedAt"`
}

type ListResp struct {
	Total        int64           `json:"total"`
	Applications []ApplicationVO `json:"applications"`
}

type DecideReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
	// Message 审核留言，超过 500 字截断
	Message string `json:"message"`
}

type ResumeReq struct {
	Uid int64 `json:"uid"`
}

type ResumeVO struct {
	Html string `json:"html"`
}
