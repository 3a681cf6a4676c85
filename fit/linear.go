package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/curvefit-go/curvefit/dataset"
	"github.com/curvefit-go/curvefit/model"
)

// linearLeastSquares solves the weighted linear least-squares problem for
// models linear in their parameters via QR factorization of the design
// matrix.
//
// The design matrix is the Vandermonde matrix of the x column; each row and
// its observation are scaled by 1/sigma so that minimizing the residual norm
// minimizes the chi-squared statistic.
func linearLeastSquares(ds *dataset.Dataset, t model.Type, degree int) (model.Model, error) {
	if t == model.TypeLinear {
		degree = 1
	}

	n := ds.Len()
	sigma := ds.Sigmas()

	a := mat.NewDense(n, degree+1, nil)
	b := mat.NewVecDense(n, nil)
	for i, xi := range ds.X {
		w := 1 / sigma[i]
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*xi {
			a.Set(i, j, p*w)
		}
		b.SetVec(i, ds.Y[i]*w)
	}

	var qr mat.QR
	qr.Factorize(a)

	c := mat.NewVecDense(degree+1, nil)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("solve weighted least squares for %s model: %w", t, err)
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
	}

	if t == model.TypeLinear {
		return model.NewLinear(coeffs[0], coeffs[1]), nil
	}

	return model.NewPolynomial(coeffs...), nil
}
