package mailer

import (
	"strings"
	"text/template"
)

type message struct {
	subject string
	body    *template.Template
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

var (
	deliveredMessage = message{
		subject: "Tu pedido está en el locker",
		body: template.Must(template.New("delivered").Parse(
			`Tu pedido ya fue depositado en el locker ubicado en {{.Address}}.

Código de retiro: {{.Token}}
Puedes retirarlo a partir de {{.Deadline}}.
`)),
	}

	goodbyeMessage = message{
		subject: "Gracias por usar nuestros lockers",
		body: template.Must(template.New("goodbye").Parse(
			`Registramos el retiro de tu pedido. ¡Gracias por preferirnos!
`)),
	}

	confirmationMessage = message{
		subject: "Confirmación de tu reserva",
		body: template.Must(template.New("confirmation").Funcs(funcs).Parse(
			`Tu pago fue recibido.

Periodo: {{.Start}} - {{.End}}
Total: {{printf "%.2f" .Price}}
{{range $i, $t := .Tokens}}
Compartimiento {{inc $i}}: código de depósito {{$t}}{{end}}
`)),
	}
)

func (m message) render(data any) (string, error) {
	var b strings.Builder
	if err := m.body.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
