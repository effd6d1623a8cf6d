package medications

import (
	"context"
	"preop-service/internal/app/contracts"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	RedisRepository      contracts.RedisRepository
	CacheTTL             time.Duration
	Log                  *zap.Logger
}

var (
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

func NewMedicationUsecase(
	medicationMongoRepository contracts.MedicationRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			MedicationRepository: medicationMongoRepository,
			RedisRepository:      redisRepository,
			CacheTTL:             cacheTTL,
			Log:                  logger,
		}
	})
	return medicationUsecaseInstance
}

// Search matches names that start with the query first, then names that
// contain it, ignoring case and accents.
func (uc *medicationUsecase) Search(ctx context.Context, request *requests.MedicationSearch) ([]responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, request.Query),
	)

	query := utils.NormalizeSearchText(request.Query)
	if utf8.RuneCountInString(query) < constvars.MinMedicationSearchLength {
		return []responses.Medication{}, nil
	}

	medications, err := uc.findAllCached(ctx)
	if err != nil {
		return nil, err
	}

	limit := request.Limit
	if limit <= 0 {
		limit = constvars.DefaultMedicationLimit
	}

	var prefixMatches, containsMatches []responses.Medication
	for _, medication := range medications {
		name := utils.NormalizeSearchText(medication.Name)
		switch {
		case strings.HasPrefix(name, query):
			prefixMatches = append(prefixMatches, medication.ConvertIntoResponse())
		case strings.Contains(name, query):
			containsMatches = append(containsMatches, medication.ConvertIntoResponse())
		}
	}

	response := append(prefixMatches, containsMatches...)
	if len(response) > limit {
		response = response[:limit]
	}
	if response == nil {
		response = []responses.Medication{}
	}

	uc.Log.Info("medicationUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMedicationCountKey, len(response)),
	)
	return response, nil
}

func (uc *medicationUsecase) findAllCached(ctx context.Context) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	var medications []models.Medication

	medicationRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyMedicationList)
	if err != nil {
		uc.Log.Error("medicationUsecase.findAllCached error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if medicationRedisData != "" {
		err = json.Unmarshal([]byte(medicationRedisData), &medications)
		if err != nil {
			uc.Log.Error("medicationUsecase.findAllCached error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return medications, nil
	}

	uc.Log.Info("medicationUsecase.findAllCached no data found in Redis, fetching from MongoDB",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	medications, err = uc.MedicationRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("medicationUsecase.findAllCached error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyMedicationList, medications, uc.CacheTTL)
	if err != nil {
		uc.Log.Error("medicationUsecase.findAllCached error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicationUsecase.findAllCached successfully fetched and cached data from MongoDB",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMedicationCountKey, len(medications)),
	)
	return medications, nil
}
