package services

import (
	"log"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/config"
)

var (
	sessionService  *SessionService
	platformService *PlatformService
	inquiryService  *InquiryService
	deckService     *DeckService
)

// InitServices wires the service singletons over Redis, Postgres, and
// the embedded catalog. Called once from main after config init.
func InitServices() {
	store := NewRedisStateStore()
	sessionService = NewSessionService(store)
	platformService = NewPlatformService(sessionService)
	inquiryService = NewInquiryService(sessionService, NewEmailJSClient(), config.LeadsGorm)
	deckService = NewDeckService(catalog.Default())
	log.Println("✅ Services initialized")
}

// GetSessionService returns the session service singleton
func GetSessionService() *SessionService {
	if sessionService == nil {
		log.Fatal("❌ services not initialized, call InitServices first")
	}
	return sessionService
}

// GetPlatformService returns the platform service singleton
func GetPlatformService() *PlatformService {
	if platformService == nil {
		log.Fatal("❌ services not initialized, call InitServices first")
	}
	return platformService
}

// GetInquiryService returns the inquiry service singleton
func GetInquiryService() *InquiryService {
	if inquiryService == nil {
		log.Fatal("❌ services not initialized, call InitServices first")
	}
	return inquiryService
}

// GetDeckService returns the deck service singleton
func GetDeckService() *DeckService {
	if deckService == nil {
		log.Fatal("❌ services not initialized, call InitServices first")
	}
	return deckService
}
