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

type LoadReq struct {
	Step string `json:"step"`
}

type SubmitReq struct {
	Step string `json:"step"`
	// Payload 这一步表单的 JSON 字符串，格式和各模块接口一致
	Payload string `json:"payload"`
}

type StepVO struct {
	Step      string `json:"step"`
	Prev      string `json:"prev"`
	Next      string `json:"next"`
	FromDraft bool   `json:"fromDraft"`
	Payload   string `json:"payload"`
}

type SubmitResp struct {
	// Next 下一步，最后一个表单步骤提交后是 summary
	Next string `json:"next"`
}
