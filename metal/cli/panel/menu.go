package panel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ehihameneromosele/fullblog2c/pkg/cli"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

const menuWidth = 44

// AdminInput carries the answers needed to provision a new admin account.
type AdminInput struct {
	Username  string `validate:"required,min=3,max=255"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"omitempty,max=255"`
	LastName  string `validate:"omitempty,max=255"`
}

type Menu struct {
	Reader    *bufio.Reader
	Validator *portal.Validator
	choice    *int
}

func MakeMenu() Menu {
	return Menu{
		Reader:    bufio.NewReader(os.Stdin),
		Validator: portal.GetDefaultValidator(),
	}
}

func (m Menu) Print() {
	cli.Cyanln("╔" + strings.Repeat("═", menuWidth) + "╗")
	cli.Cyanln("║" + m.CenterText("Blog Operator Panel", menuWidth) + "║")
	cli.Cyanln("╠" + strings.Repeat("═", menuWidth) + "╣")

	m.PrintOption("1. Create a blog admin account", menuWidth)
	m.PrintOption("2. Promote a user to blog admin", menuWidth)
	m.PrintOption("3. Show an account", menuWidth)
	m.PrintOption("0. Exit", menuWidth)

	cli.Cyanln("╚" + strings.Repeat("═", menuWidth) + "╝")
}

func (m Menu) CenterText(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}

	left := (width - len(text)) / 2
	right := width - len(text) - left

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func (m Menu) PrintOption(text string, width int) {
	padding := width - len(text) - 1

	if padding < 0 {
		padding = 0
	}

	fmt.Println("║ " + text + strings.Repeat(" ", padding) + "║")
}

func (m Menu) PrintLine() {
	fmt.Println(strings.Repeat("-", menuWidth))
}

func (m *Menu) CaptureInput() error {
	m.Print()

	fmt.Print("Choose an option: ")

	line, err := m.Reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("could not read the given option: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("the given option is not a number: %w", err)
	}

	m.choice = &choice

	return nil
}

func (m Menu) GetChoice() int {
	if m.choice == nil {
		return 0
	}

	return *m.choice
}

func (m Menu) CaptureUsername() (string, error) {
	return m.capture("Username")
}

// CaptureNewAdmin walks through the prompts for a fresh admin account and
// validates the collected answers before returning them.
func (m Menu) CaptureNewAdmin() (*AdminInput, error) {
	username, err := m.CaptureUsername()
	if err != nil {
		return nil, err
	}

	email, err := m.capture("Email")
	if err != nil {
		return nil, err
	}

	password, err := m.capture("Password")
	if err != nil {
		return nil, err
	}

	firstName, _ := m.captureOptional("First name")
	lastName, _ := m.captureOptional("Last name")

	input := AdminInput{
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}

	if rejected, err := m.Validator.Rejects(input); rejected {
		return nil, fmt.Errorf("invalid account details: %s: %w", m.Validator.GetErrorsAsJson(), err)
	}

	return &input, nil
}

func (m Menu) capture(label string) (string, error) {
	fmt.Printf("%s: ", label)

	line, err := m.Reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("could not read the given %s: %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)

	if value == "" {
		return "", fmt.Errorf("the given %s cannot be empty", strings.ToLower(label))
	}

	return value, nil
}

func (m Menu) captureOptional(label string) (string, error) {
	fmt.Printf("%s (optional): ", label)

	line, err := m.Reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
