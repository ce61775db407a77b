package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/config"
	"github.com/dmitrijs2005/checkmygrade/internal/cryptox"
	"github.com/dmitrijs2005/checkmygrade/internal/csvfile"
	"github.com/dmitrijs2005/checkmygrade/internal/filex"
	"github.com/dmitrijs2005/checkmygrade/internal/grades"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/credentials"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
	"github.com/dmitrijs2005/checkmygrade/internal/services"
	"github.com/dmitrijs2005/checkmygrade/internal/session"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	auth       services.AuthService
	students   *services.StudentService
	professors *services.ProfessorService
	courses    *services.CourseService
	ledger     *grades.Ledger
	commands   []command

	secret []byte
	token  string
	who    session.Identity

	reader *bufio.Reader
	out    io.Writer
}

// NewApp prepares the data directory and stores and wires the services. It
// reads from stdin and writes to stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	return newApp(c, log, bufio.NewReader(os.Stdin), os.Stdout)
}

func newApp(c *config.Config, log logging.Logger, in *bufio.Reader, out io.Writer) (*App, error) {
	ctx := context.Background()

	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageIO, err)
	}

	paths := c.StorePaths()
	loginStore := credentials.NewStore(paths.Login)
	studentStore := csvfile.New(paths.Students, entity.StudentCodec{}.Header())
	professorStore := csvfile.New(paths.Professors, entity.ProfessorCodec{}.Header())
	courseStore := csvfile.New(paths.Courses, entity.CourseCodec{}.Header())

	for _, s := range []*csvfile.Store{loginStore, studentStore, professorStore, courseStore} {
		created, err := s.Ensure()
		if err != nil {
			return nil, err
		}
		if created {
			log.Info(ctx, "store created", "path", s.Path())
		}
	}

	hasher, err := cryptox.NewPasswordHasher(c.KDFIterations)
	if err != nil {
		return nil, err
	}

	courseRepo := entity.NewRepository[models.Course](courseStore, entity.CourseCodec{}, log)
	auth := services.NewAuthService(credentials.NewCSVRepository(loginStore), hasher, log)

	secret := []byte(c.SessionSecret)
	if len(secret) == 0 {
		secret = session.NewSecret()
	}

	a := &App{
		config:   c,
		log:      log,
		auth:     auth,
		students: services.NewStudentService(entity.NewRepository[models.Student](studentStore, entity.StudentCodec{}, log), auth, log),
		professors: services.NewProfessorService(
			entity.NewRepository[models.Professor](professorStore, entity.ProfessorCodec{}, log), courseRepo, auth, log),
		courses: services.NewCourseService(courseRepo, log),
		ledger:  grades.NewLedger(),
		secret:  secret,
		reader:  in,
		out:     out,
	}
	a.commands = a.commandTable()
	return a, nil
}

// Run makes sure an administrator exists and then serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	banner(a.out, "Welcome to CheckMyGrade (type 'help' for commands)")
	if err := a.ensureAdmin(ctx); err != nil {
		return err
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) status() string {
	if a.token == "" {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.who.Email, a.who.Role)
}

func (a *App) currentRole(ctx context.Context) (models.Role, bool) {
	if a.token == "" {
		return "", false
	}
	id, err := session.Parse(a.token, a.secret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			warn(a.out, "Session expired, please log in again")
		}
		a.log.Info(ctx, "session ended", "email", a.who.Email, "reason", err)
		a.clearSession()
		return "", false
	}
	a.who = id
	return id.Role, true
}

func (a *App) clearSession() {
	a.token = ""
	a.who = session.Identity{}
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// argOrAsk returns args[i] when present and prompts otherwise.
func (a *App) argOrAsk(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return a.ask(prompt)
}

type field struct {
	prompt string
	dst    *string
}

// askEach prompts for every field in order and stops at the first error.
func (a *App) askEach(fields ...field) error {
	for _, f := range fields {
		v, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// newPassword asks for a password twice and returns it when both match.
func (a *App) newPassword(prompt string) ([]byte, error) {
	pw, err := GetPassword(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	again, err := GetPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if len(pw) == 0 {
		return nil, fmt.Errorf("%w: password is empty", common.ErrorInvalidInput)
	}
	if string(pw) != string(again) {
		common.WipeByteArray(pw)
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrorInvalidInput)
	}
	return pw, nil
}
