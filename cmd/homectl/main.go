package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"github.com/hoshichaam/ojol_app_go/internal/config"
	"github.com/hoshichaam/ojol_app_go/internal/home"
	"github.com/hoshichaam/ojol_app_go/internal/models"
	"github.com/hoshichaam/ojol_app_go/internal/services"
)

var errFlowFailed = errors.New("flow did not complete")

type options struct {
	apiURL    string
	native    bool
	pushToken string
	timeout   time.Duration
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log.SetLevel(cfg.Level())
	log.SetOutput(os.Stderr)

	if err := newRootCmd(cfg, nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. auth overrides the HTTP client when non-nil.
func newRootCmd(cfg config.Config, auth home.AuthService) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "homectl",
		Short:         "Jalankan alur daftar / login / lupa password layar home dari terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.apiURL, "api-url", cfg.APIURL, "URL dasar API autentikasi")
	pf.BoolVar(&opts.native, "native", false, "anggap berjalan di device (kirim push token)")
	pf.StringVar(&opts.pushToken, "push-token", "", "push token FCM device")
	pf.DurationVar(&opts.timeout, "timeout", cfg.HTTPTimeout, "timeout request ke API")

	build := func() home.AuthService {
		if auth != nil {
			return auth
		}
		return services.NewAuthClient(opts.apiURL, opts.timeout)
	}

	root.AddCommand(
		newRegisterCmd(opts, build),
		newLoginCmd(opts, build),
		newForgotPasswordCmd(opts, build),
	)
	return root
}

func newRegisterCmd(opts *options, build func() home.AuthService) *cobra.Command {
	var d models.RegistrationDraft
	var role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Daftar akun baru",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d.Role = models.Role(role)
			out, _ := runFlow(cmd, opts, build(), func(ctx context.Context, s *home.Screen) {
				s.SetRegistration(d)
				s.SignUp(ctx)
			})
			if out.Navigation == nil {
				return errFlowFailed
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.Username, "username", "", "username")
	f.StringVar(&d.Name, "name", "", "nama lengkap")
	f.StringVar(&d.Email, "email", "", "email")
	f.StringVar(&d.Phone, "phone", "", "nomor telepon")
	f.StringVar(&role, "role", "", "rider atau driver")
	f.StringVar(&d.Password, "password", "", "password")
	f.StringVar(&d.Vehicle.Type, "vehicle-type", "", "tipe kendaraan (driver)")
	f.StringVar(&d.Vehicle.Brand, "brand", "", "merek kendaraan (driver)")
	f.StringVar(&d.Vehicle.Color, "color", "", "warna kendaraan (driver)")
	f.StringVar(&d.Vehicle.Plate, "plate", "", "nomor plat (driver)")
	return cmd
}

func newLoginCmd(opts *options, build func() home.AuthService) *cobra.Command {
	var d models.LoginDraft
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login dengan email atau username",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := runFlow(cmd, opts, build(), func(ctx context.Context, s *home.Screen) {
				s.SetLogin(d)
				s.Login(ctx)
			})
			if out.Navigation == nil {
				return errFlowFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&d.Identifier, "login", "", "email atau username")
	cmd.Flags().StringVar(&d.Password, "password", "", "password")
	return cmd
}

func newForgotPasswordCmd(opts *options, build func() home.AuthService) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Minta link reset password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, st := runFlow(cmd, opts, build(), func(ctx context.Context, s *home.Screen) {
				s.SetForgotEmail(email)
				s.SendForgotPasswordEmail(ctx)
			})
			// email dikosongkan hanya kalau request diterima
			if st.Forgot.Email != "" || email == "" {
				return errFlowFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email akun")
	return cmd
}

// runFlow runs one screen action and prints what the user would have seen.
func runFlow(cmd *cobra.Command, opts *options, auth home.AuthService, fn func(context.Context, *home.Screen)) (home.Outcome, home.State) {
	rec := &home.Recorder{}
	dev := &home.Device{Native: opts.native, PushToken: opts.pushToken}
	s := home.New(home.Deps{
		Auth:      auth,
		Navigator: rec,
		Alerter:   rec,
		Platform:  dev,
		Push:      dev,
	})

	fn(cmd.Context(), s)

	out := rec.Drain()
	printOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), out)
	return out, s.State()
}

func printOutcome(stdout, stderr io.Writer, out home.Outcome) {
	for _, a := range out.Alerts {
		fmt.Fprintln(stderr, "!", a)
	}
	if nav := out.Navigation; nav != nil {
		if q := nav.Query.Encode(); q != "" {
			fmt.Fprintf(stdout, "-> %s?%s\n", nav.Path, q)
		} else {
			fmt.Fprintf(stdout, "-> %s\n", nav.Path)
		}
	}
}
