package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/finsight/financial-insights-api/internal/domain"
)

//go:embed data/financial_data.json
var embeddedDataset []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store expõe o conjunto de dados financeiro de forma somente leitura.
// A hierarquia é categoria -> empresa -> ano -> registros trimestrais.
type Store interface {
	Categories() []string
	Companies(category string) []string
	Years(category, company string) []int
	Records(category, company string, year int) []domain.PeriodRecord
}

// quarterEntry é o formato de um registro trimestral no JSON de origem.
// O ano não aparece no registro: é fornecido pela chave externa.
type quarterEntry struct {
	Quarter     int     `json:"quarter"`
	SalesVolume float64 `json:"sales_volume"`
	Profit      float64 `json:"profit"`
}

// rawDataset espelha a estrutura aninhada do arquivo embarcado
type rawDataset map[string]map[string]map[string][]quarterEntry

type store struct {
	categories []string
	companies  map[string][]string
	years      map[string][]int
	records    map[string][]domain.PeriodRecord
}

// New cria um Store a partir do dataset embarcado no binário
func New() (Store, error) {
	return FromBytes(embeddedDataset)
}

// NewFromFile cria um Store a partir de um arquivo externo, quando o
// caminho é informado via configuração
func NewFromFile(path string) (Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o dataset em %s", path)
	}

	return FromBytes(content)
}

// FromBytes decodifica e indexa o dataset. Categorias e empresas são
// ordenadas alfabeticamente e os anos em ordem crescente, para que toda
// iteração seja determinística.
func FromBytes(content []byte) (Store, error) {
	raw := rawDataset{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o dataset")
	}

	s := &store{
		companies: make(map[string][]string),
		years:     make(map[string][]int),
		records:   make(map[string][]domain.PeriodRecord),
	}

	for category, companies := range raw {
		s.categories = append(s.categories, category)

		for company, byYear := range companies {
			s.companies[category] = append(s.companies[category], company)

			companyKey := pathKey(category, company)
			for yearKey, entries := range byYear {
				year, err := strconv.Atoi(yearKey)
				if err != nil {
					return nil, errors.Wrapf(err, "ano inválido no dataset: %q", yearKey)
				}

				s.years[companyKey] = append(s.years[companyKey], year)

				records := make([]domain.PeriodRecord, 0, len(entries))
				for _, entry := range entries {
					records = append(records, domain.PeriodRecord{
						Year:        year,
						Quarter:     entry.Quarter,
						SalesVolume: entry.SalesVolume,
						Profit:      entry.Profit,
					})
				}
				s.records[pathKey(category, company, yearKey)] = records
			}

			sort.Ints(s.years[companyKey])
		}

		sort.Strings(s.companies[category])
	}

	sort.Strings(s.categories)

	return s, nil
}

func (s *store) Categories() []string {
	return s.categories
}

func (s *store) Companies(category string) []string {
	return s.companies[category]
}

func (s *store) Years(category, company string) []int {
	return s.years[pathKey(category, company)]
}

func (s *store) Records(category, company string, year int) []domain.PeriodRecord {
	return s.records[pathKey(category, company, strconv.Itoa(year))]
}

// pathKey monta a chave composta usada no índice plano
func pathKey(parts ...string) string {
	key := ""
	for i, part := range parts {
		if i > 0 {
			key += "\x00"
		}
		key += part
	}
	return key
}

// Describe retorna um resumo do dataset carregado, usado apenas em logs de
// inicialização
func Describe(s Store) string {
	companies := 0
	for _, category := range s.Categories() {
		companies += len(s.Companies(category))
	}
	return fmt.Sprintf("%d categorias, %d empresas", len(s.Categories()), companies)
}
