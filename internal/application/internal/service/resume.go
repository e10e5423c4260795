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
	"bytes"
	"context"
	"html/template"

	"github.com/irantalent/estekhdam/internal/pkg/pdf"
)

type ResumeService interface {
	// Html 实时拉取申请人四个模块的数据渲染成可打印的简历页面
	Html(ctx context.Context, uid int64) (string, error)
	Pdf(ctx context.Context, uid int64) ([]byte, error)
}

type resumeService struct {
	composer  *SnapshotComposer
	converter pdf.Converter
	tmpl      *template.Template
}

func NewResumeService(composer *SnapshotComposer, converter pdf.Converter) ResumeService {
	return &resumeService{
		composer:  composer,
		converter: converter,
		tmpl:      template.Must(template.New("resume").Parse(resumeTemplate)),
	}
}

func (s *resumeService) Html(ctx context.Context, uid int64) (string, error) {
	snapshot, err := s.composer.Compose(ctx, uid)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = s.tmpl.Execute(&buf, snapshot)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *resumeService) Pdf(ctx context.Context, uid int64) ([]byte, error) {
	html, err := s.Html(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.converter.ConvertHTMLToPDF(ctx, html,
		pdf.WithTitle("رزومه"))
}

// 简历模板，波斯语从右往左排版
const resumeTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="fa">
<head>
<meta charset="utf-8">
<title>رزومه</title>
<style>
  body { font-family: Tahoma, sans-serif; margin: 24px; color: #222; }
  h1 { font-size: 22px; border-bottom: 2px solid #444; padding-bottom: 8px; }
  h2 { font-size: 16px; margin-top: 24px; border-bottom: 1px solid #bbb; padding-bottom: 4px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { text-align: right; padding: 4px 8px; border-bottom: 1px solid #eee; font-size: 13px; }
  .meta { font-size: 13px; color: #555; }
</style>
</head>
<body>
<h1>{{ .Profile.FirstName }} {{ .Profile.LastName }}</h1>
<p class="meta">
  کد ملی: {{ .Profile.NationalCode }}
  | موبایل: {{ .Profile.Mobile }}
  | ایمیل: {{ .Profile.Email }}
  {{- if .Profile.City }} | شهر: {{ .Profile.City }}{{ end }}
</p>

<h2>سوابق تحصیلی</h2>
<table>
<tr><th>مقطع</th><th>رشته</th><th>مؤسسه</th><th>شروع</th><th>پایان</th></tr>
{{ range .Educations }}
<tr>
  <td>{{ .Degree }}</td>
  <td>{{ .FieldOfStudy }}</td>
  <td>{{ .InstitutionName }}</td>
  <td>{{ .StartDate }}</td>
  <td>{{ if .StillStudying }}در حال تحصیل{{ else }}{{ .EndDate }}{{ end }}</td>
</tr>
{{ end }}
</table>

<h2>سوابق شغلی</h2>
<table>
<tr><th>شرکت</th><th>سمت</th><th>شروع</th><th>پایان</th></tr>
{{ range .Works }}
<tr>
  <td>{{ .Company }}</td>
  <td>{{ .Position }}</td>
  <td>{{ .StartDate }}</td>
  <td>{{ if .StillWorking }}شاغل{{ else }}{{ .EndDate }}{{ end }}</td>
</tr>
{{ end }}
</table>

<h2>مهارت‌ها</h2>
<table>
<tr><th>مهارت فنی</th><th>امتیاز</th></tr>
{{ range .Skills.Technical }}
<tr><td>{{ .Name }}</td><td>{{ .Level }} از ۵</td></tr>
{{ end }}
</table>
<table>
<tr><th>زبان</th><th>خواندن</th><th>نوشتن</th><th>مکالمه</th><th>درک مطلب</th></tr>
{{ range .Skills.Languages }}
<tr>
  <td>{{ .Language }}</td>
  <td>{{ .Reading }}</td>
  <td>{{ .Writing }}</td>
  <td>{{ .Speaking }}</td>
  <td>{{ .Comprehension }}</td>
</tr>
{{ end }}
</table>
<table>
<tr><th>مهارت مدیریتی</th><th>امتیاز</th></tr>
{{ range .Skills.Management }}
<tr><td>{{ .Name }}</td><td>{{ .Level }} از ۵</td></tr>
{{ end }}
</table>
</body>
</html>`
