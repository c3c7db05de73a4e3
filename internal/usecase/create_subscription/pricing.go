package create_subscription

import (
	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// cyclePricing é o resultado do cálculo de preço de um ciclo
type cyclePricing struct {
	// BaseCycle é a base por pet: override quando informado, senão a soma
	// dos snapshots de serviço multiplicada pelas ocorrências do ciclo
	BaseCycle decimal.Decimal
	// PerPet é o pacote por pet: base + tosa (se habilitada) + extra
	PerPet decimal.Decimal
	// TotalPackage é a cobrança do ciclo inteiro, todos os pets
	TotalPackage decimal.Decimal
}

// computeCyclePricing aplica as três camadas de precificação, da maior
// precedência para a menor:
//
//  1. override de total: quando > 0 vence tudo; a cota por pet é a divisão
//     igualitária pelo número de pets (não ponderada por consumo)
//  2. override de base do ciclo: quando > 0 substitui a soma padrão dos
//     serviços
//  3. padrão: soma dos snapshots × ocorrências do ciclo
//
// A tosa entra uma única vez por pet (na ocorrência designada) e o extra
// entra uma vez por pet.
func computeCyclePricing(req *ValidatedRequest, snapshots []domain.ServiceSnapshot) cyclePricing {
	occurrences := int64(req.Frequency.OccurrenceCount())

	servicesPerOccurrence := decimal.Zero
	for _, s := range snapshots {
		servicesPerOccurrence = servicesPerOccurrence.Add(s.Price)
	}

	base := servicesPerOccurrence.Mul(decimal.NewFromInt(occurrences))
	if req.BaseOverride.IsPositive() {
		base = req.BaseOverride
	}

	tosa := decimal.Zero
	if req.Tosa.Enabled {
		tosa = req.Tosa.Price
	}

	perPet := base.Add(tosa).Add(req.Extra.Value)
	petCount := decimal.NewFromInt(int64(len(req.PetIDs)))

	if req.TotalOverride.IsPositive() {
		// Divisão igualitária arredondada ao centavo: perPet × petCount
		// fica a no máximo um centavo do override
		return cyclePricing{
			BaseCycle:    base,
			PerPet:       req.TotalOverride.Div(petCount).Round(2),
			TotalPackage: req.TotalOverride,
		}
	}

	return cyclePricing{
		BaseCycle:    base,
		PerPet:       perPet,
		TotalPackage: perPet.Mul(petCount),
	}
}

// occurrenceTotal calcula o total de uma ocorrência individual: soma dos
// snapshots mais a tosa quando esta é a ocorrência designada
func occurrenceTotal(snapshots []domain.ServiceSnapshot, tosaPrice decimal.Decimal, isTosaOccurrence bool) decimal.Decimal {
	total := decimal.Zero
	for _, s := range snapshots {
		total = total.Add(s.Price)
	}
	if isTosaOccurrence {
		total = total.Add(tosaPrice)
	}
	return total
}
