package services

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/alexchen-dev/portfolio-backend/catalog"
	"github.com/alexchen-dev/portfolio-backend/content"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// DeckService renders the downloadable services deck PDF for a
// platform persona.
type DeckService struct {
	store *catalog.Store
}

// NewDeckService creates a deck service over the catalog.
func NewDeckService(store *catalog.Store) *DeckService {
	return &DeckService{store: store}
}

// GenerateServicesDeck builds a one-document overview of the persona's
// services, intake options, and client quotes.
func (s *DeckService) GenerateServicesDeck(platform models.Platform) (*bytes.Buffer, error) {
	bundle := content.Resolve(platform)
	services := catalog.FilterServices(s.store.Services(), platform)
	testimonials := s.store.Testimonials()

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s Services Deck", platform.Label()), props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(bundle.Hero.TitleStart+" "+bundle.Hero.TitleHighlight, props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(bundle.Hero.Description, props.Text{
				Size:  10,
				Color: mediumGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("Services", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	for _, svc := range services {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(svc.Title, props.Text{
					Size:  12,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(svc.Description, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
		for _, point := range svc.Points {
			m.Row(5, func() {
				m.Col(12, func() {
					m.Text("- "+point, props.Text{
						Size:  9,
						Color: mediumGray,
						Left:  4,
					})
				})
			})
		}
	}

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text("Engagement Options", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	for _, opt := range bundle.ProjectOptions {
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(opt.Title, props.Text{
					Size:  10,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(opt.Price, props.Text{
					Size:  10,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
		})
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(opt.Description, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text("What Clients Say", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	for _, t := range testimonials {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("\"%s\"", t.Content), props.Text{
					Size:  9,
					Style: consts.Italic,
					Color: darkGray,
				})
			})
		})
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%s, %s at %s", t.Name, t.Role, t.Company), props.Text{
					Size:  8,
					Color: mediumGray,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render deck: %w", err)
	}
	return &buf, nil
}
