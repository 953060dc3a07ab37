package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/handlers/importer/v1alpha1"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
	importermock "github.com/KirkDiggler/rpg-importer/internal/services/importer/mock"
	"github.com/KirkDiggler/rpg-importer/internal/testutils"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *importermock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      *v1alpha1.FeatureServiceClient
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = importermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ImportService: s.mockService,
		Logger:        zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterFeatureServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewFeatureServiceClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) documentStruct() *structpb.Struct {
	data, err := json.Marshal(testutils.CreateTestDocument())
	s.Require().NoError(err)

	req := &structpb.Struct{}
	s.Require().NoError(req.UnmarshalJSON(data))
	return req
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestParseFeatures() {
	s.mockService.EXPECT().
		ImportFeatures(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *importersvc.ImportFeaturesInput) (*importersvc.ImportFeaturesOutput, error) {
			s.Assert().Equal(testutils.TestCharacterName, input.Document.Character.Name)
			s.Require().Len(input.Document.Character.Classes, 1)
			s.Assert().Equal(testutils.FighterClassID, input.Document.Character.Classes[0].Definition.ID)
			return &importersvc.ImportFeaturesOutput{
				Import: &entities.Import{
					ID:            "imp_1",
					CharacterID:   input.Document.Character.ID,
					CharacterName: input.Document.Character.Name,
					CreatedAt:     testNow,
					Features: []*foundry.Feature{{
						Name:  "Second Wind",
						Type:  foundry.ItemTypeFeat,
						Data:  foundry.FeatureData{Damage: foundry.Damage{Parts: [][2]string{{"1d10", "healing"}}}},
						Flags: foundry.Flags{ID: testutils.SecondWindFeatureID, Type: foundry.CategoryClass},
					}},
				},
				Stored: true,
			}, nil
		})

	resp, err := s.client.ParseFeatures(s.ctx, s.documentStruct())
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Assert().Equal("imp_1", fields["import_id"].GetStringValue())
	s.Assert().Equal(float64(1001), fields["character_id"].GetNumberValue())
	s.Assert().True(fields["stored"].GetBoolValue())
	s.Assert().NotContains(fields, "expires_at")

	features := fields["features"].GetListValue().GetValues()
	s.Require().Len(features, 1)
	feature := features[0].GetStructValue().GetFields()
	s.Assert().Equal("Second Wind", feature["name"].GetStringValue())
	s.Assert().Equal("class", feature["flags"].GetStructValue().GetFields()["type"].GetStringValue())
}

func (s *HandlerTestSuite) TestParseFeaturesServiceError() {
	s.mockService.EXPECT().
		ImportFeatures(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("character has no background"))

	_, err := s.client.ParseFeatures(s.ctx, s.documentStruct())

	s.Require().Error(err)
	s.Assert().Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestParseFeaturesMalformedDocument() {
	req, err := structpb.NewStruct(map[string]interface{}{
		"character": "not an object",
	})
	s.Require().NoError(err)

	_, err = s.client.ParseFeatures(s.ctx, req)

	s.Require().Error(err)
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetImport() {
	s.Run("found", func() {
		s.mockService.EXPECT().
			GetImport(gomock.Any(), &importersvc.GetImportInput{ImportID: "imp_1"}).
			Return(&importersvc.GetImportOutput{Import: &entities.Import{
				ID:          "imp_1",
				CharacterID: 1001,
				CreatedAt:   testNow,
				ExpiresAt:   testNow.Add(time.Hour),
			}}, nil)

		req, err := structpb.NewStruct(map[string]interface{}{"import_id": "imp_1"})
		s.Require().NoError(err)

		resp, err := s.client.GetImport(s.ctx, req)
		s.Require().NoError(err)
		s.Assert().Equal("imp_1", resp.GetFields()["import_id"].GetStringValue())
		s.Assert().Equal("2024-05-01T13:00:00Z", resp.GetFields()["expires_at"].GetStringValue())
		s.Assert().Empty(resp.GetFields()["features"].GetListValue().GetValues())
	})

	s.Run("not found carries metadata", func() {
		s.mockService.EXPECT().
			GetImport(gomock.Any(), &importersvc.GetImportInput{ImportID: "missing"}).
			Return(nil, errors.NotFound("import not found").WithMeta("import_id", "missing"))

		req, err := structpb.NewStruct(map[string]interface{}{"import_id": "missing"})
		s.Require().NoError(err)

		_, err = s.client.GetImport(s.ctx, req)
		s.Require().Error(err)
		s.Assert().Equal(codes.NotFound, status.Code(err))

		converted := errors.FromGRPCError(err)
		s.Assert().Equal("missing", errors.GetMeta(converted)["import_id"])
	})

	s.Run("missing id", func() {
		_, err := s.client.GetImport(s.ctx, &structpb.Struct{})
		s.Assert().Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestListImports() {
	s.mockService.EXPECT().
		ListImports(gomock.Any(), &importersvc.ListImportsInput{CharacterID: 1001, Limit: 5}).
		Return(&importersvc.ListImportsOutput{Imports: []*entities.Import{
			{ID: "imp_2", CharacterID: 1001, CreatedAt: testNow.Add(time.Minute)},
			{ID: "imp_1", CharacterID: 1001, CreatedAt: testNow},
		}}, nil)

	req, err := structpb.NewStruct(map[string]interface{}{"character_id": 1001, "limit": 5})
	s.Require().NoError(err)

	resp, err := s.client.ListImports(s.ctx, req)
	s.Require().NoError(err)

	imports := resp.GetFields()["imports"].GetListValue().GetValues()
	s.Require().Len(imports, 2)
	s.Assert().Equal("imp_2", imports[0].GetStructValue().GetFields()["import_id"].GetStringValue())

	_, err = s.client.ListImports(s.ctx, &structpb.Struct{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}
