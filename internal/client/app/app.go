// Package app is the interactive console front of the dashboard: sign-in,
// role-scoped navigation, and the entity list/form flows, all driven through
// the shared client engines.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/form"
	"github.com/hitenSisghSoft/soundbox/internal/client/list"
	"github.com/hitenSisghSoft/soundbox/internal/client/session"
	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
	"github.com/hitenSisghSoft/soundbox/internal/role"
)

// lineReader is the console input source.
type lineReader interface {
	ReadString(delim byte) (string, error)
}

// App wires the session, the API client, and the terminal together.
type App struct {
	client  *api.Client
	session *session.Session
	notify  toast.Notifier
	log     zerolog.Logger
	in      lineReader
	out     io.Writer

	refreshToken string
}

// New builds the console app.
func New(client *api.Client, sess *session.Session, notify toast.Notifier, log zerolog.Logger, in lineReader, out io.Writer) *App {
	return &App{
		client:  client,
		session: sess,
		notify:  notify,
		log:     log,
		in:      in,
		out:     out,
	}
}

// Navigate is the console's route change: it prints the destination. The API
// client's 401 handler points here so an expired session lands on sign-in.
func (a *App) Navigate(route string) {
	fmt.Fprintf(a.out, "\n-> %s\n", route)
}

// Run drives the console until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		if !a.session.Authenticated() {
			if err := a.signIn(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				continue
			}
		}
		quit, err := a.mainMenu(ctx)
		if errors.Is(err, io.EOF) || quit {
			return nil
		}
	}
}

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	return a.readLine()
}

// authResult is the login response payload.
type authResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         session.User `json:"user"`
}

func (a *App) signIn(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n== Sign In ==")
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}

	payload, err := a.client.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			a.notify.Notify(apiErr.Message, toast.Error)
		}
		return err
	}

	var result authResult
	if err := payload.DecodeData(&result); err != nil {
		return err
	}

	if err := a.session.SetToken(result.AccessToken); err != nil {
		return err
	}
	if err := a.session.SetUser(&result.User); err != nil {
		return err
	}
	a.refreshToken = result.RefreshToken
	a.client.ResetUnauthorized()

	a.notify.Notify("Signed in as "+result.User.Name, toast.Success)
	a.Navigate(role.RoutePrefix(a.session.CurrentRole()))
	return nil
}

func (a *App) signOut(ctx context.Context) {
	if a.refreshToken != "" {
		_, _ = a.client.Do(ctx, api.Request{
			Method: http.MethodPost,
			Path:   "/users/logout",
			Body:   map[string]string{"refresh_token": a.refreshToken},
		})
		a.refreshToken = ""
	}
	_ = a.session.Clear()
	a.Navigate(signInRoute)
}

func (a *App) printMenu() {
	r := a.session.CurrentRole()
	fmt.Fprintf(a.out, "\n== %s %s ==\n", strings.ToUpper(r.String()), role.RoutePrefix(r))
	for _, entry := range a.session.MenuItems() {
		if entry.Path != "" {
			fmt.Fprintf(a.out, "  %-12s %s\n", entry.Name, entry.Path)
			continue
		}
		fmt.Fprintf(a.out, "  %s\n", entry.Name)
		for _, sub := range entry.SubItems {
			fmt.Fprintf(a.out, "    %-10s %s\n", sub.Name, sub.Path)
		}
	}
}

// mainMenu shows the role's navigation and dispatches one action. The boolean
// reports a quit request.
func (a *App) mainMenu(ctx context.Context) (bool, error) {
	a.printMenu()

	r := a.session.CurrentRole()
	if r == role.Admin {
		fmt.Fprintln(a.out, "[e] employees  [m] merchants  [p] profile  [s] switch role  [o] sign out  [q] quit")
	} else if r == role.Agent {
		fmt.Fprintln(a.out, "[m] merchants  [p] profile  [s] switch role  [o] sign out  [q] quit")
	} else {
		fmt.Fprintln(a.out, "[p] profile  [s] switch role  [o] sign out  [q] quit")
	}

	choice, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch choice {
	case "e":
		if r == role.Admin {
			return false, a.employeesFlow(ctx)
		}
	case "m":
		if r == role.Admin || r == role.Agent {
			return false, a.merchantsFlow(ctx)
		}
	case "p":
		return false, a.profileFlow(ctx)
	case "s":
		return false, a.switchRole()
	case "o":
		a.signOut(ctx)
	case "q":
		return true, nil
	}
	return false, nil
}

func (a *App) switchRole() error {
	input, err := a.prompt("Role (admin/agent/operations/support/merchant)")
	if err != nil {
		return err
	}
	r, ok := role.Parse(input)
	if !ok {
		a.notify.Notify("Unknown role, using "+r.String(), toast.Warning)
	}
	if err := a.session.SetRole(r); err != nil {
		return err
	}
	a.Navigate(role.RoutePrefix(r))
	return nil
}

// profileFlow edits the signed-in user's own record: name, email, and mobile
// only. Role and password stay with the admin screens.
func (a *App) profileFlow(ctx context.Context) error {
	record, err := fetchRecord[employeeRecord](ctx, a.client, profilePath)
	if err != nil {
		a.reportError(err)
		return nil
	}

	fmt.Fprintf(a.out, "\n== Profile (%s) ==\n", profileRoute)
	schema := profileSchema()
	eng := form.New(form.Config{
		Schema:    schema,
		Mode:      form.ModeEdit,
		Record:    record.values(),
		RecordID:  strconv.FormatUint(uint64(record.ID), 10),
		Endpoints: profileEndpoints(),
		Client:    a.client,
		Notifier:  a.notify,
		OnSuccess: func() {
			// The header and persisted session show the new name next run.
			if fresh, err := fetchRecord[employeeRecord](ctx, a.client, profilePath); err == nil {
				if u := a.session.User(); u != nil {
					u.Name = fresh.Name
					u.Email = fresh.Email
					_ = a.session.SetUser(u)
				}
			}
		},
		SuccessMessage: "Profile updated successfully",
		FailureMessage: "Unable to update profile",
	})
	return a.runForm(ctx, eng, schema)
}

// fetchList runs one GET-style request and decodes the data array.
func fetchList[T any](ctx context.Context, client *api.Client, req api.Request) ([]T, error) {
	payload, err := client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := payload.DecodeData(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// fetchRecord fetches one record by its canonical GET endpoint. Edit forms
// hydrate from this fresh copy rather than the row the list last rendered.
func fetchRecord[T any](ctx context.Context, client *api.Client, path string) (*T, error) {
	payload, err := client.Do(ctx, api.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	var record T
	if err := payload.DecodeData(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// reportError toasts a non-expiry failure and reports whether the session
// died, in which case the caller abandons its flow.
func (a *App) reportError(err error) (expired bool) {
	if errors.Is(err, api.ErrSessionExpired) {
		return true
	}
	var apiErr *api.Error
	msg := api.FallbackMessage
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	a.notify.Notify(msg, toast.Error)
	return false
}

// runForm prompts for every visible schema field, then submits. Validation
// messages are printed next to their field names; the entered values survive
// a failed submit.
func (a *App) runForm(ctx context.Context, eng *form.Engine, schema form.Schema) error {
	values := eng.Values()
	for _, field := range schema.Fields {
		if field.Hidden {
			continue
		}
		fmt.Fprintf(a.out, "%s [%s]: ", field.Label, values[field.Name])
		input, err := a.readLine()
		if err != nil {
			return err
		}
		if input != "" {
			eng.Set(field.Name, input)
		}
	}

	err := eng.Submit(ctx)
	if errors.Is(err, form.ErrInvalid) {
		for name, msg := range eng.FieldErrors() {
			fmt.Fprintf(a.out, "  %s: %s\n", name, msg)
		}
	}
	return err
}

// confirmDelete drives the modal: ask, then delete-and-refetch or cancel.
func confirmDelete[T any](a *App, ctx context.Context, eng *list.Engine[T], id string) error {
	eng.RequestDelete(id)
	answer, err := a.prompt("Delete " + id + "? (y/n)")
	if err != nil {
		return err
	}
	if answer != "y" {
		eng.CancelDelete()
		return nil
	}
	return eng.ConfirmDelete(ctx)
}

func (a *App) employeesFlow(ctx context.Context) error {
	eng := list.New(list.Config[employeeRecord]{
		Fetch: func(ctx context.Context) ([]employeeRecord, error) {
			return fetchList[employeeRecord](ctx, a.client, api.Request{
				Method: http.MethodGet,
				Path:   employeeListPath,
			})
		},
		Delete: func(ctx context.Context, id string) error {
			_, err := a.client.Do(ctx, api.Request{
				Method: http.MethodDelete,
				Path:   employeeDeletePath + id,
			})
			return err
		},
		Notifier:       a.notify,
		FailureMessage: "Unable to load employees",
	})

	if err := eng.Load(ctx); err != nil {
		return nil
	}

	for {
		items := eng.Items()
		fmt.Fprintf(a.out, "\n== Employees (%s) ==\n", employeeListRoute)
		if eng.Empty() {
			fmt.Fprintln(a.out, "  no employees")
		}
		for i, emp := range items {
			fmt.Fprintf(a.out, "  %2d. %-20s %-28s %-12s %s\n", i+1, emp.Name, emp.Email, emp.Mobile, emp.Role)
		}
		fmt.Fprintln(a.out, "[a] add  [e N] edit  [d N] delete  [r] refresh  [b] back")

		input, err := a.readLine()
		if err != nil {
			return err
		}
		cmd, idx := splitCommand(input, len(items))
		switch cmd {
		case "a":
			_ = a.employeeForm(ctx, form.ModeAdd, nil, eng)
		case "e":
			if idx >= 0 {
				// Edit hydrates from the server's current copy, not the
				// listed row.
				record, err := fetchRecord[employeeRecord](ctx, a.client, employeeGetPath+strconv.FormatUint(uint64(items[idx].ID), 10))
				if err != nil {
					if a.reportError(err) {
						return nil
					}
					continue
				}
				_ = a.employeeForm(ctx, form.ModeEdit, record, eng)
			}
		case "d":
			if idx >= 0 {
				if err := confirmDelete(a, ctx, eng, strconv.FormatUint(uint64(items[idx].ID), 10)); err != nil && errors.Is(err, api.ErrSessionExpired) {
					return nil
				}
			}
		case "r":
			if err := eng.Refresh(ctx); errors.Is(err, api.ErrSessionExpired) {
				return nil
			}
		case "b":
			return nil
		}
	}
}

func (a *App) employeeForm(ctx context.Context, mode form.Mode, record *employeeRecord, parent *list.Engine[employeeRecord]) error {
	schema := employeeSchema(mode)
	cfg := form.Config{
		Schema:         schema,
		Mode:           mode,
		Endpoints:      employeeEndpoints(),
		Client:         a.client,
		Notifier:       a.notify,
		Navigate:       a.Navigate,
		ListRoute:      employeeListRoute,
		SuccessMessage: "Employee saved",
		FailureMessage: "Unable to save employee",
	}
	if record != nil {
		cfg.Record = record.values()
		cfg.RecordID = strconv.FormatUint(uint64(record.ID), 10)
	}
	cfg.OnSuccess = func() { _ = parent.Refresh(ctx) }
	return a.runForm(ctx, form.New(cfg), schema)
}

func (a *App) merchantsFlow(ctx context.Context) error {
	mobile, err := a.prompt("Merchant mobile filter [" + a.session.Filter("merchant_mobile") + "]")
	if err != nil {
		return err
	}
	if mobile == "" {
		mobile = a.session.Filter("merchant_mobile")
	} else {
		_ = a.session.SetFilter("merchant_mobile", mobile)
	}

	eng := list.New(list.Config[merchantRecord]{
		Fetch: func(ctx context.Context) ([]merchantRecord, error) {
			if mobile == "" {
				return fetchList[merchantRecord](ctx, a.client, api.Request{
					Method: http.MethodGet,
					Path:   merchantListPath,
				})
			}
			return fetchList[merchantRecord](ctx, a.client, api.Request{
				Method: http.MethodGet,
				Path:   merchantSearchPath,
				Params: url.Values{"mobile_number": {mobile}},
			})
		},
		Delete: func(ctx context.Context, id string) error {
			_, err := a.client.Do(ctx, api.Request{
				Method: http.MethodDelete,
				Path:   merchantDeletePath + id,
			})
			return err
		},
		Notifier:       a.notify,
		FailureMessage: "Unable to load merchants",
	})

	if err := eng.Load(ctx); err != nil {
		return nil
	}

	for {
		items := eng.Items()
		fmt.Fprintf(a.out, "\n== Merchants (%s) ==\n", merchantListRoute)
		if eng.Empty() {
			fmt.Fprintln(a.out, "  no merchants found")
		}
		for i, m := range items {
			marker := " "
			if eng.OpenIndex() == i {
				marker = ">"
			}
			fmt.Fprintf(a.out, " %s%2d. %-20s %-12s %s\n", marker, i+1, m.Name, m.MobileNumber, m.CompanyName)
		}
		fmt.Fprintln(a.out, "[a] add  [e N] edit  [d N] delete  [t N] stores  [r] refresh  [b] back")

		input, err := a.readLine()
		if err != nil {
			return err
		}
		cmd, idx := splitCommand(input, len(items))
		switch cmd {
		case "a":
			_ = a.merchantForm(ctx, form.ModeAdd, nil, eng)
		case "e":
			if idx >= 0 {
				record, err := fetchRecord[merchantRecord](ctx, a.client, merchantGetPath+items[idx].ID)
				if err != nil {
					if a.reportError(err) {
						return nil
					}
					continue
				}
				_ = a.merchantForm(ctx, form.ModeEdit, record, eng)
			}
		case "d":
			if idx >= 0 {
				if err := confirmDelete(a, ctx, eng, items[idx].ID); err != nil && errors.Is(err, api.ErrSessionExpired) {
					return nil
				}
			}
		case "t":
			if idx >= 0 {
				if eng.Toggle(idx) >= 0 {
					if err := a.storesFlow(ctx, items[idx]); err != nil {
						return err
					}
					eng.CloseRow()
				}
			}
		case "r":
			if err := eng.Refresh(ctx); errors.Is(err, api.ErrSessionExpired) {
				return nil
			}
		case "b":
			return nil
		}
	}
}

func (a *App) merchantForm(ctx context.Context, mode form.Mode, record *merchantRecord, parent *list.Engine[merchantRecord]) error {
	schema := merchantSchema()
	cfg := form.Config{
		Schema:         schema,
		Mode:           mode,
		Endpoints:      merchantEndpoints(),
		Client:         a.client,
		Notifier:       a.notify,
		Navigate:       a.Navigate,
		ListRoute:      merchantListRoute,
		SuccessMessage: "Merchant saved",
		FailureMessage: "Unable to save merchant",
	}
	if record != nil {
		cfg.Record = record.values()
		cfg.RecordID = record.ID
	}
	cfg.OnSuccess = func() { _ = parent.Refresh(ctx) }
	return a.runForm(ctx, form.New(cfg), schema)
}

func (a *App) storesFlow(ctx context.Context, merchant merchantRecord) error {
	eng := list.New(list.Config[storeRecord]{
		Fetch: func(ctx context.Context) ([]storeRecord, error) {
			return fetchList[storeRecord](ctx, a.client, api.Request{
				Method: http.MethodPost,
				Path:   merchantStoresPath,
				Body:   map[string]string{"merchant_id": merchant.ID},
			})
		},
		Delete: func(ctx context.Context, id string) error {
			_, err := a.client.Do(ctx, api.Request{
				Method: http.MethodDelete,
				Path:   storeDeletePath + id,
			})
			return err
		},
		Notifier:       a.notify,
		FailureMessage: "Unable to load stores",
	})

	if err := eng.Load(ctx); err != nil {
		return nil
	}

	for {
		items := eng.Items()
		fmt.Fprintf(a.out, "\n== Stores of %s ==\n", merchant.Name)
		if eng.Empty() {
			fmt.Fprintln(a.out, "  no stores")
		}
		for i, st := range items {
			marker := " "
			if eng.OpenIndex() == i {
				marker = ">"
			}
			fmt.Fprintf(a.out, " %s%2d. %-20s %-10s %s, %s\n", marker, i+1, st.StoreName, st.StoreCode, st.City, st.State)
		}
		fmt.Fprintln(a.out, "[a] add  [e N] edit  [d N] delete  [t N] machines  [r] refresh  [b] back")

		input, err := a.readLine()
		if err != nil {
			return err
		}
		cmd, idx := splitCommand(input, len(items))
		switch cmd {
		case "a":
			_ = a.storeForm(ctx, form.ModeAdd, nil, merchant.ID, eng)
		case "e":
			if idx >= 0 {
				_ = a.storeForm(ctx, form.ModeEdit, &items[idx], merchant.ID, eng)
			}
		case "d":
			if idx >= 0 {
				if err := confirmDelete(a, ctx, eng, items[idx].ID); err != nil && errors.Is(err, api.ErrSessionExpired) {
					return nil
				}
			}
		case "t":
			if idx >= 0 {
				if eng.Toggle(idx) >= 0 {
					if err := a.machinesFlow(ctx, items[idx]); err != nil {
						return err
					}
					eng.CloseRow()
				}
			}
		case "r":
			if err := eng.Refresh(ctx); errors.Is(err, api.ErrSessionExpired) {
				return nil
			}
		case "b":
			return nil
		}
	}
}

func (a *App) storeForm(ctx context.Context, mode form.Mode, record *storeRecord, merchantID string, parent *list.Engine[storeRecord]) error {
	schema := storeSchema()
	cfg := form.Config{
		Schema:         schema,
		Mode:           mode,
		Record:         form.Values{"merchant_id": merchantID},
		Endpoints:      storeEndpoints(),
		Client:         a.client,
		Notifier:       a.notify,
		OnSuccess:      func() { _ = parent.Refresh(ctx) },
		SuccessMessage: "Store saved",
		FailureMessage: "Unable to save store",
	}
	if record != nil {
		cfg.Record = record.values()
		cfg.RecordID = record.ID
	}
	return a.runForm(ctx, form.New(cfg), schema)
}

func (a *App) machinesFlow(ctx context.Context, store storeRecord) error {
	eng := list.New(list.Config[machineRecord]{
		Fetch: func(ctx context.Context) ([]machineRecord, error) {
			return fetchList[machineRecord](ctx, a.client, api.Request{
				Method: http.MethodGet,
				Path:   machineByStorePath + store.ID,
			})
		},
		Delete: func(ctx context.Context, id string) error {
			_, err := a.client.Do(ctx, api.Request{
				Method: http.MethodDelete,
				Path:   machineDeletePath + id,
			})
			return err
		},
		Notifier:       a.notify,
		FailureMessage: "Unable to load machines",
	})

	if err := eng.Load(ctx); err != nil {
		return nil
	}

	for {
		items := eng.Items()
		fmt.Fprintf(a.out, "\n== Machines of %s ==\n", store.StoreName)
		if eng.Empty() {
			fmt.Fprintln(a.out, "  no machines")
		}
		for i, m := range items {
			fmt.Fprintf(a.out, "  %2d. %-16s %-20s %-10s vol=%d\n", i+1, m.MachineID, m.SerialNumber, m.Brand, m.VolumeLevel)
		}
		fmt.Fprintln(a.out, "[a] add  [e N] edit  [d N] delete  [r] refresh  [b] back")

		input, err := a.readLine()
		if err != nil {
			return err
		}
		cmd, idx := splitCommand(input, len(items))
		switch cmd {
		case "a":
			_ = a.machineForm(ctx, form.ModeAdd, nil, store.ID, eng)
		case "e":
			if idx >= 0 {
				_ = a.machineForm(ctx, form.ModeEdit, &items[idx], store.ID, eng)
			}
		case "d":
			if idx >= 0 {
				if err := confirmDelete(a, ctx, eng, items[idx].ID); err != nil && errors.Is(err, api.ErrSessionExpired) {
					return nil
				}
			}
		case "r":
			if err := eng.Refresh(ctx); errors.Is(err, api.ErrSessionExpired) {
				return nil
			}
		case "b":
			return nil
		}
	}
}

func (a *App) machineForm(ctx context.Context, mode form.Mode, record *machineRecord, storeID string, parent *list.Engine[machineRecord]) error {
	schema := machineSchema()
	cfg := form.Config{
		Schema:         schema,
		Mode:           mode,
		Record:         form.Values{"assigned_store_id": storeID},
		Endpoints:      machineEndpoints(),
		Client:         a.client,
		Notifier:       a.notify,
		OnSuccess:      func() { _ = parent.Refresh(ctx) },
		SuccessMessage: "Machine saved",
		FailureMessage: "Unable to save machine",
	}
	if record != nil {
		cfg.Record = record.values()
		cfg.RecordID = record.ID
	}
	return a.runForm(ctx, form.New(cfg), schema)
}

// splitCommand parses "e 3" style input into a command and a zero-based
// index, -1 when absent or out of range.
func splitCommand(input string, n int) (string, int) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", -1
	}
	if len(parts) == 1 {
		return parts[0], -1
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 1 || i > n {
		return parts[0], -1
	}
	return parts[0], i - 1
}
