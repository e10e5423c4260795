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

package domain

// Education 教育经历，整个列表在保存时全量替换
type Education struct {
	Id              int64
	Uid             int64
	Degree          string
	FieldOfStudy    string
	Specialization  string
	InstitutionType string
	InstitutionName string
	Grade           string
	StartDate       string
	// EndDate 在 StillStudying 为 true 时为空
	EndDate       string
	StillStudying bool
	Description   string
}
