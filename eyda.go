package otfeyda

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-eyda/internal/assessment"
	"github.com/nsip/otf-eyda/internal/scores"
)

type EydaService struct {
	// embedded web server to handle scoring requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// file path or url of the assessment document
	questionsSource string
	// the assessment document, nil if it could not be loaded
	doc *assessment.Document
	// the scoring year and how many years before it are tracked
	currentYear int
	history     int
	// scores for every tracked year
	store *scores.Store
	// sample data generator seed
	seed int64
	rng  *rand.Rand
}

//
// create a new service instance
//
func New(options ...Option) (*EydaService, error) {

	srvc := EydaService{
		serviceHost: "localhost",
		currentYear: time.Now().Year(),
		history:     2,
	}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}

	// single attempt, a failed load leaves the document unset
	if srvc.doc == nil {
		doc, err := assessment.Load(srvc.questionsSource)
		if err != nil {
			log.Errorf("error loading assessment document: %s", err)
		} else {
			srvc.doc = doc
			log.Infof("assessment document loaded: %d sections, %d questions", len(doc.Sections), doc.TotalQuestions())
		}
	}

	srvc.store = scores.NewStore(srvc.doc, srvc.currentYear, srvc.history)

	seed := srvc.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	srvc.rng = rand.New(rand.NewSource(seed))

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	srvc.e.Renderer = newReportRenderer()
	srvc.routes()

	return &srvc, nil
}

func (s *EydaService) routes() {

	// add pingable method to know we're up
	s.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})

	s.e.GET("/assessment", s.handleAssessment)
	s.e.GET("/legend", s.handleLegend)
	s.e.GET("/tabs/:index", s.handleTab)

	s.e.GET("/years", s.handleYears)
	s.e.PUT("/years/selected", s.handleSwitchYear)

	s.e.POST("/scores", s.handleSelectScore)
	s.e.POST("/scores/sample", s.handleGenerateSample)
	s.e.DELETE("/scores", s.handleClearAll)
	s.e.GET("/scores/:year", s.handleYearScores)
	s.e.DELETE("/scores/:year", s.handleClearYear)
	s.e.GET("/scores/:year/:questionId", s.handleQuestionScore)

	s.e.GET("/progress/:year", s.handleCompletion)
	s.e.GET("/progress/:year/section", s.handleSectionScore)
	s.e.GET("/progress/:year/subsection", s.handleSubsectionScore)
	s.e.GET("/summary", s.handleAllSummaries)
	s.e.GET("/summary/:year", s.handleSummary)

	s.e.GET("/report/:year", s.handleReport)
}

//
// the service as a plain http handler
//
func (s *EydaService) Handler() http.Handler {
	return s.e
}

//
// start the service running
//
func (s *EydaService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// shut the server down gracefully
//
func (s *EydaService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}
}

func (s *EydaService) PrintConfig() {

	fmt.Println("\n\tOTF-EYDA Service Configuration")
	fmt.Println("\t---------------------------------")
	fmt.Println()

	s.printID()
	s.printAssessmentConfig()

}

func (s *EydaService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *EydaService) printAssessmentConfig() {
	fmt.Println("\tquestions source:\t", s.questionsSource)
	if s.doc == nil {
		fmt.Println("\tassessment:\t\t not loaded")
	} else {
		fmt.Println("\tassessment sections:\t", len(s.doc.Sections))
		fmt.Println("\tassessment questions:\t", s.doc.TotalQuestions())
	}
	fmt.Println("\ttracked years:\t\t", s.store.Years())
}
