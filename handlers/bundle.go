package handlers

import (
	accountRepo "samvidhansetu/database/repository/account"
)

// HandlerBundle groups the handlers and shared dependencies the route
// registration needs.
type HandlerBundle struct {
	// AccountRepo backs the auth and admin-role middleware.
	AccountRepo accountRepo.AccountRepository

	Auth  *AuthHandler
	Laws  *LawHandler
	AI    *AIHandler
	Admin *AdminHandler
}
