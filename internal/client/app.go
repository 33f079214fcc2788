package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/service"
	"github.com/cryptbox/cryptbox/internal/session"
)

const usage = `usage: cryptbox-client <command> [flags]

commands:
  register  create an account and unlock a session
  login     authenticate and unlock a session
  upload    encrypt and upload files
  download  download and decrypt files by id
  list      list stored files
  unlock    unlock the vaulted master key and list files offline
  delete    delete a stored file
  forget    drop the locally vaulted master key
`

type App struct {
	services *service.ClientServices

	in  *bufio.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, logger *logger.Logger) *App {
	return &App{
		services: services,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		logger:   logger,
	}
}

// Run implements [Client].
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errors.New("no command provided")
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "upload":
		return a.upload(ctx, args[1:])
	case "download":
		return a.download(ctx, args[1:])
	case "list":
		return a.list(ctx, args[1:])
	case "unlock":
		return a.unlock(ctx, args[1:])
	case "delete":
		return a.delete(ctx, args[1:])
	case "forget":
		return a.forget(ctx, args[1:])
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := a.prompt("password: ")
	if err != nil {
		return err
	}

	sess, err := a.services.AuthService.Register(ctx, *login, password)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	fmt.Fprintf(a.out, "registered, user id %d\n", sess.UserID())
	return a.offerVault(ctx, sess)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.authenticate(ctx, *login)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	fmt.Fprintf(a.out, "logged in, user id %d\n", sess.UserID())
	return a.offerVault(ctx, sess)
}

func (a *App) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no files to upload")
	}

	sess, err := a.authenticate(ctx, *login)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	var files []service.FileUpload
	for _, path := range fs.Args() {
		body, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("read %s: %w", path, readErr)
		}
		files = append(files, service.FileUpload{
			Filename: filepath.Base(path),
			MIMEType: mimeTypeOf(path),
			Body:     body,
		})
	}

	results, err := a.services.TransferService.Upload(ctx, sess, files, a.printProgress)
	if err != nil {
		return err
	}

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(a.out, "failed %s: %v\n", result.Filename, result.Err)
			continue
		}
		fmt.Fprintf(a.out, "uploaded %s as %s\n", result.Filename, result.FileID)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(results))
	}
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	outDir := fs.String("out", ".", "directory for downloaded files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no file ids to download")
	}

	sess, err := a.authenticate(ctx, *login)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	results, err := a.services.TransferService.Download(ctx, sess, fs.Args(), a.printProgress)
	if err != nil {
		return err
	}

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(a.out, "failed %s: %v\n", result.FileID, result.Err)
			continue
		}

		target := filepath.Join(*outDir, filepath.Base(result.Metadata.Filename))
		if writeErr := os.WriteFile(target, result.Body, 0o600); writeErr != nil {
			return fmt.Errorf("write %s: %w", target, writeErr)
		}
		fmt.Fprintf(a.out, "downloaded %s to %s\n", result.FileID, target)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(results))
	}
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.authenticate(ctx, *login)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	files, err := a.services.TransferService.List(ctx, sess)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files stored")
		return nil
	}

	for _, file := range files {
		fmt.Fprintf(a.out, "%s  %s  %s\n",
			file.FileID, file.CreatedAt.Format("2006-01-02 15:04"), file.Filename)
	}
	return nil
}

// unlock recovers the Master Key from the local vault and renders the
// listing from the local file index. Fully offline: no password, no
// server round-trip, so it works without connectivity as long as the
// key was vaulted and the index has been populated.
func (a *App) unlock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("unlock", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id whose vault entry to unlock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret, err := a.prompt("vault secret: ")
	if err != nil {
		return err
	}

	sess, err := a.services.AuthService.UnlockFromVault(ctx, *userID, secret)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	fmt.Fprintf(a.out, "vault unlocked, user id %d\n", sess.UserID())

	files, err := a.services.TransferService.ListLocal(ctx, sess)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files indexed locally")
		return nil
	}

	for _, file := range files {
		fmt.Fprintf(a.out, "%s  %s  %s\n",
			file.FileID, file.CreatedAt.Format("2006-01-02 15:04"), file.Filename)
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	fileID := fs.String("id", "", "file id to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.authenticate(ctx, *login)
	if err != nil {
		return err
	}
	defer a.services.AuthService.Logout(sess)

	if err := a.services.TransferService.Delete(ctx, sess, *fileID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", *fileID)
	return nil
}

func (a *App) forget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forget", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id whose vault entry to drop")
	all := fs.Bool("all", false, "drop every vault entry on this device")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *all {
		if err := a.services.Vault.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "all vault entries removed")
		return nil
	}

	exists, err := a.services.Vault.Exists(ctx, *userID)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(a.out, "no vault entry for that user")
		return nil
	}

	if err := a.services.Vault.Delete(ctx, *userID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "vault entry removed")
	return nil
}

// authenticate performs the full login round-trip for one command.
func (a *App) authenticate(ctx context.Context, login string) (*session.Session, error) {
	password, err := a.prompt("password: ")
	if err != nil {
		return nil, err
	}

	return a.services.AuthService.Login(ctx, login, password)
}

// offerVault lets the user seal the session key into the local vault so
// that the files stay recoverable offline under a separate secret.
func (a *App) offerVault(ctx context.Context, sess *session.Session) error {
	secret, err := a.prompt("vault secret (empty to skip): ")
	if err != nil {
		return err
	}
	if secret == "" {
		return nil
	}

	if err := a.services.AuthService.SaveToVault(ctx, sess, secret); err != nil {
		return fmt.Errorf("save key to vault: %w", err)
	}

	fmt.Fprintln(a.out, "master key vaulted")
	return nil
}

func (a *App) printProgress(p service.TransferProgress) {
	name := p.Filename
	if name == "" {
		name = p.FileID
	}
	if p.State == service.StateFailed {
		fmt.Fprintf(a.out, "%s: %s (%v)\n", name, p.State, p.Err)
		return
	}
	fmt.Fprintf(a.out, "%s: %s\n", name, p.State)
}

// prompt reads one line from the client's input. Secrets never travel
// through argv where other processes could see them.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)

	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func mimeTypeOf(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}
