package service

import (
	"context"
	"strings"

	"arogya-chat-be/internal/dto"
	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/internal/pkg/mailer"
)

type IContactService interface {
	Submit(ctx context.Context, request *dto.ContactRequest) error
}

type contactService struct {
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewContactService(emailService mailer.IEmailService, log logger.ILogger) IContactService {
	return &contactService{
		emailService: emailService,
		log:          log,
	}
}

func (s *contactService) Submit(ctx context.Context, request *dto.ContactRequest) error {
	subject := strings.TrimSpace(request.Subject)
	if subject == "" {
		subject = "General inquiry"
	}

	if err := s.emailService.SendContactMessage(request.Name, request.Email, subject, request.Message); err != nil {
		s.log.Error("CONTACT", "Failed to relay contact message", map[string]interface{}{
			"email": request.Email,
			"error": err.Error(),
		})
		return err
	}

	s.log.Info("CONTACT", "Contact message relayed", map[string]interface{}{
		"email": request.Email,
	})
	return nil
}
