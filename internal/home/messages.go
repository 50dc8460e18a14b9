package home

import "errors"

// Pesan alert yang tampil ke pengguna.
const (
	msgAccountIncomplete = "Semua field wajib diisi!"
	msgVehicleIncomplete = "Informasi kendaraan harus diisi lengkap!"
	msgRegisterFailed    = "Terjadi kesalahan saat registrasi."
	msgLoginIncomplete   = "Isi semua data login"
	msgLoginFailed       = "Login gagal"
	msgForgotNoEmail     = "Masukkan email Anda."
	msgForgotSent        = "Link reset password telah dikirim ke email Anda"
	msgForgotFailed      = "Gagal mengirim email reset password"
)

// Tujuan navigasi.
const (
	RouteVerifyCode = "/verifycode"
	RouteDriverMenu = "/menudriver"
	RouteRiderHome  = "/beranda"
)

type userMessager interface {
	UserMessage() string
}

// userMessage returns the message embedded in err, or fallback.
func userMessage(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
