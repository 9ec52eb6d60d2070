package catalog

import "github.com/hammamikhairi/cozinha/internal/domain"

func intPtr(n int) *int { return &n }

// seedRecipes returns the built-in recipes shown on first launch.
func seedRecipes() []domain.Recipe {
	return []domain.Recipe{
		carbonara(),
		salmonBowl(),
		chocolateMousse(),
	}
}

func carbonara() domain.Recipe {
	return domain.Recipe{
		ID:              "1",
		Title:           "Pasta à Carbonara Autêntica",
		Description:     "Um clássico italiano cremoso feito apenas com ovos, queijo pecorino, guanciale e pimenta preta.",
		ImageURL:        "https://images.unsplash.com/photo-1612874742237-6526221588e3?q=80&w=800&auto=format&fit=crop",
		PrepTimeMinutes: 20,
		Difficulty:      domain.DifficultyMedium,
		Category:        domain.CategoryPasta,
		Author:          "Chef Giovanni",
		IsFavorite:      true,
		Calories:        intPtr(650),
		Ingredients: []domain.Ingredient{
			{ID: "i1", Name: "Espaguete", Amount: 200, Unit: "g"},
			{ID: "i2", Name: "Guanciale ou Pancetta", Amount: 100, Unit: "g"},
			{ID: "i3", Name: "Gemas de ovo", Amount: 3, Unit: "unid"},
			{ID: "i4", Name: "Queijo Pecorino Romano", Amount: 50, Unit: "g"},
			{ID: "i5", Name: "Pimenta do reino", Amount: 1, Unit: "gosto"},
		},
		Steps: []domain.Step{
			{ID: "s1", Description: "Ferva uma panela grande com água e sal."},
			{ID: "s2", Description: "Frite o guanciale em fogo médio até ficar crocante.", TimerSeconds: 300},
			{ID: "s3", Description: "Em uma tigela separada, bata as gemas com o queijo pecorino e pimenta."},
			{ID: "s4", Description: "Cozinhe a massa por 2 minutos a menos que o tempo do pacote.", TimerSeconds: 480},
			{ID: "s5", Description: "Misture a massa com o guanciale e adicione a mistura de ovos fora do fogo para não coagular."},
		},
	}
}

func salmonBowl() domain.Recipe {
	return domain.Recipe{
		ID:              "2",
		Title:           "Bowl de Salmão com Abacate",
		Description:     "Uma opção saudável e refrescante repleta de ômega-3 e gorduras boas.",
		ImageURL:        "https://images.unsplash.com/photo-1467003909585-2f8a72700288?q=80&w=800&auto=format&fit=crop",
		PrepTimeMinutes: 15,
		Difficulty:      domain.DifficultyEasy,
		Category:        domain.CategoryFitness,
		Author:          "Nutri Marina",
		Calories:        intPtr(420),
		Ingredients: []domain.Ingredient{
			{ID: "i6", Name: "Filé de Salmão", Amount: 150, Unit: "g"},
			{ID: "i7", Name: "Abacate", Amount: 0.5, Unit: "unid"},
			{ID: "i8", Name: "Arroz integral cozido", Amount: 100, Unit: "g"},
			{ID: "i9", Name: "Pepino japonês", Amount: 0.5, Unit: "unid"},
			{ID: "i10", Name: "Molho Shoyu light", Amount: 1, Unit: "colher sopa"},
		},
		Steps: []domain.Step{
			{ID: "s6", Description: "Grelhe o salmão temperado com sal e limão.", TimerSeconds: 480},
			{ID: "s7", Description: "Corte o abacate e o pepino em fatias finas."},
			{ID: "s8", Description: "Monte o bowl começando pelo arroz, seguido dos vegetais e o peixe por cima."},
		},
	}
}

func chocolateMousse() domain.Recipe {
	return domain.Recipe{
		ID:              "3",
		Title:           "Mousse de Chocolate Belga",
		Description:     "Sobremesa sofisticada com textura aerada e sabor intenso de cacau.",
		ImageURL:        "https://images.unsplash.com/photo-1541783245831-57d6fb0926d3?q=80&w=800&auto=format&fit=crop",
		PrepTimeMinutes: 30,
		Difficulty:      domain.DifficultyHard,
		Category:        domain.CategoryDessert,
		Author:          "Chef Patissier",
		Calories:        intPtr(320),
		Ingredients: []domain.Ingredient{
			{ID: "i11", Name: "Chocolate 70% cacau", Amount: 200, Unit: "g"},
			{ID: "i12", Name: "Claras de ovo", Amount: 4, Unit: "unid"},
			{ID: "i13", Name: "Açúcar de confeiteiro", Amount: 50, Unit: "g"},
			{ID: "i14", Name: "Creme de leite fresco", Amount: 100, Unit: "ml"},
		},
		Steps: []domain.Step{
			{ID: "s9", Description: "Derreta o chocolate em banho-maria."},
			{ID: "s10", Description: "Bata as claras em neve até formar picos firmes.", TimerSeconds: 300},
			{ID: "s11", Description: "Misture delicadamente o chocolate com o creme de leite e depois as claras."},
			{ID: "s12", Description: "Leve à geladeira por pelo menos 4 horas.", TimerSeconds: 14400},
		},
	}
}
