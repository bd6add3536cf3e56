package notify

import (
	"strings"
	"text/template"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type digestData struct {
	Period    domain.BirthdayPeriod
	From, To  time.Time
	Birthdays []Birthday
}

var digestTmpl = template.Must(template.New("digest").Funcs(template.FuncMap{
	"day":   func(t time.Time) string { return t.Format("Mon 2 Jan") },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).Parse(`{{len .Birthdays}} birthday(s) from {{day .From}} to {{day .To}}:
{{range .Birthdays}}
- {{day .Date}}: {{.Alumnus.Name}}{{with .Alumnus.Email}} <{{deref .}}>{{end}}{{range $i, $p := .Alumnus.Phones}}{{if eq $i 0}} / {{else}}, {{end}}{{$p}}{{end}}
{{- end}}
`))

func renderDigest(data digestData) (string, error) {
	var b strings.Builder
	if err := digestTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
