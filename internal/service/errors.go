package service

import "errors"

// Errors returned by services carry the message shown to API clients.
var (
	// Directory
	ErrMissingFields      = errors.New("Semua field harus diisi")
	ErrInvalidRole        = errors.New("Role tidak valid")
	ErrUsernameTaken      = errors.New("Username sudah dipakai")
	ErrEmailTaken         = errors.New("Email sudah dipakai")
	ErrRTNumberRequired   = errors.New("Nomor RT harus diisi")
	ErrRTNumberTaken      = errors.New("Nomor RT sudah terdaftar")
	ErrRWExists           = errors.New("Admin RW sudah terdaftar")
	ErrInvalidCredentials = errors.New("Username atau password salah")
	ErrUnauthenticated    = errors.New("Please authenticate.")
	ErrUserNotFound       = errors.New("User tidak ditemukan")
	ErrEmailNotRegistered = errors.New("Email tidak terdaftar")
	ErrNothingToUpdate    = errors.New("Tidak ada data yang perlu diperbarui")
	ErrWrongOldPassword   = errors.New("Password lama salah")
	ErrPasswordMismatch   = errors.New("Konfirmasi password tidak cocok")
	ErrPasswordTooShort   = errors.New("Password minimal 6 karakter")
	ErrForbidden          = errors.New("Anda tidak memiliki akses")

	// Spreadsheet
	ErrFileRequired    = errors.New("File tidak ditemukan")
	ErrSheetNotFound   = errors.New(`Sheet "Users" tidak ditemukan`)
	ErrInvalidWorkbook = errors.New("File Excel tidak valid")
	ErrMissingColumns  = errors.New("Kolom Username, Name, Email, dan Role wajib ada")

	// Complaints
	ErrComplaintNotFound   = errors.New("Complaint not found")
	ErrComplaintIncomplete = errors.New("Title and description are required")
	ErrStatusRequired      = errors.New("Status is required")
	ErrFilterRequiresLogin = errors.New("Authentication required to filter by user")
	ErrInvalidVoteType     = errors.New(`Invalid vote type. Must be "upvote" or "downvote"`)
	ErrEmptyComment        = errors.New("Comment content cannot be empty")
	ErrCommentNotFound     = errors.New("Comment not found")
	ErrCommentForbidden    = errors.New("You do not have permission to delete this comment")

	// Ledger
	ErrInvalidTransactionType = errors.New(`Type must be "income" or "expense"`)
	ErrInvalidAmount          = errors.New("Amount must be greater than zero")
	ErrCategoryRequired       = errors.New("Category is required")
	ErrInvalidDate            = errors.New("Date must use the YYYY-MM-DD format")
	ErrInvalidMonth           = errors.New("Month must be between 1 and 12")

	// Google sign-in
	ErrOAuthDisabled   = errors.New("Google login is not configured")
	ErrOAuthExchange   = errors.New("authentication_failed")
	ErrTokenGeneration = errors.New("token_generation_failed")
)
