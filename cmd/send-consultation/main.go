package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"devnsecure_site_go/config"
	"devnsecure_site_go/models"
	"devnsecure_site_go/services"

	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], cfg.AppURL+services.ConsultationPath, interactive, os.Stdin, os.Stdout, os.Stderr))
}

// run submits one consultation request and returns the process exit code.
// Missing required values are prompted for when interactive is true.
func run(args []string, defaultEndpoint string, interactive bool, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("send-consultation", flag.ContinueOnError)
	fs.SetOutput(stderr)
	endpoint := fs.String("endpoint", defaultEndpoint, "consultation endpoint URL")
	email := fs.String("email", "", "contact email address")
	whatsapp := fs.String("whatsapp", "", "WhatsApp number, any formatting")
	projectContext := fs.String("context", "", "optional project description")
	source := fs.String("source", models.ModalConsultationSource, "source label shown in the notification")
	timeout := fs.Duration("timeout", 30*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if interactive {
		reader := bufio.NewReader(stdin)
		fmt.Fprintln(stdout, "=== Start a Secure Build ===")
		prompt(reader, stdout, "Email Address: ", email)
		prompt(reader, stdout, "WhatsApp Number: ", whatsapp)
		prompt(reader, stdout, "Project Context (optional): ", projectContext)
	}

	client := services.NewConsultationClient(*endpoint, nil)
	form := services.NewConsultationForm(client, *source)
	if err := form.Open(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	form.SetField(services.FieldEmail, *email)
	form.SetField(services.FieldWhatsApp, *whatsapp)
	form.SetField(services.FieldProjectContext, *projectContext)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	err := form.Submit(ctx)
	snap := form.Snapshot()
	switch {
	case err == nil:
		fmt.Fprintln(stdout, "Your request has been sent. Our engineers will reach out shortly.")
		return 0
	case errors.Is(err, services.ErrFormInvalid):
		if snap.FieldErrors.Email != "" {
			fmt.Fprintf(stderr, "email: %s\n", snap.FieldErrors.Email)
		}
		if snap.FieldErrors.WhatsApp != "" {
			fmt.Fprintf(stderr, "whatsapp: %s\n", snap.FieldErrors.WhatsApp)
		}
	default:
		fmt.Fprintf(stderr, "Error: %s\n", snap.Error)
		// Transport failures carry no endpoint message; show the cause
		var ce *services.ConsultationError
		if !errors.As(err, &ce) {
			fmt.Fprintf(stderr, "Cause: %v\n", err)
		}
	}
	return 1
}

// prompt asks for a value unless one was given on the command line
func prompt(reader *bufio.Reader, out io.Writer, label string, value *string) {
	if *value != "" {
		return
	}
	fmt.Fprint(out, label)
	line, _ := reader.ReadString('\n')
	*value = strings.TrimSpace(line)
}
